package browser

// Package browser implements the surface that hosts the web application:
// it fetches pages, sanitizes and flattens them into a Document, runs inline
// scripts in a sandboxed goja runtime, and keeps the back stack. Navigation
// and progress are reported through the Client capability interface; the
// Fyne rendering lives in the ui package.
