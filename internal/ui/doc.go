// Package ui contains the Fyne screen of the shell: the browser view that
// renders the hosted web app, the load progress bar, back-key handling and
// the update dialog. RootUI wires them to the browser engine, the
// navigation policy and the update checker.
package ui
