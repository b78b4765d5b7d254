package browser

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func scriptDoc(scripts ...string) *Document {
	return &Document{
		URL:     "https://neis-helper.pages.dev/checklist",
		Title:   "체크리스트",
		Scripts: scripts,
	}
}

func TestScriptRunnerTitleAndStorage(t *testing.T) {
	storage := NewMemoryStorage()
	storage.SetItem(testOrigin, "count", "2")
	runner := NewScriptRunner(DefaultSettings(), storage, nil)

	result := runner.Run(context.Background(), scriptDoc(
		`var n = parseInt(localStorage.getItem("count"), 10) + 1;
		 localStorage.setItem("count", String(n));
		 window.localStorage.setItem("missing", String(localStorage.getItem("nope")));`,
		`document.title = "체크리스트 (" + localStorage.getItem("count") + ")";`,
	))

	assert.Equal(t, "체크리스트 (3)", result.Title)
	assert.Empty(t, result.Navigate)
	assert.False(t, result.Reload)

	value, _ := storage.GetItem(testOrigin, "count")
	assert.Equal(t, "3", value)
	value, _ = storage.GetItem(testOrigin, "missing")
	assert.Equal(t, "null", value)
}

func TestScriptRunnerContinuesAfterError(t *testing.T) {
	runner := NewScriptRunner(DefaultSettings(), NewMemoryStorage(), nil)

	result := runner.Run(context.Background(), scriptDoc(
		`document.getElementById("root").innerHTML = "x";`,
		`console.log("still running"); document.title = "ok";`,
	))

	assert.Equal(t, "ok", result.Title)
}

func TestScriptRunnerNavigation(t *testing.T) {
	runner := NewScriptRunner(DefaultSettings(), nil, nil)

	result := runner.Run(context.Background(), scriptDoc(`location.assign("/calendar");`))
	assert.Equal(t, "https://neis-helper.pages.dev/calendar", result.Navigate)

	result = runner.Run(context.Background(), scriptDoc(`location.href = "https://help.neis.go.kr";`))
	assert.Equal(t, "https://help.neis.go.kr", result.Navigate)

	result = runner.Run(context.Background(), scriptDoc(`location.reload();`))
	assert.True(t, result.Reload)
	assert.Empty(t, result.Navigate)
}

func TestScriptRunnerTimeout(t *testing.T) {
	runner := NewScriptRunner(DefaultSettings(), nil, nil)
	runner.timeout = 50 * time.Millisecond

	result := runner.Run(context.Background(), scriptDoc(
		`while (true) {}`,
		`document.title = "after loop";`,
	))

	assert.Equal(t, "after loop", result.Title)
}

func TestScriptRunnerDisabled(t *testing.T) {
	settings := DefaultSettings()
	settings.JavaScriptEnabled = false
	runner := NewScriptRunner(settings, NewMemoryStorage(), nil)

	result := runner.Run(context.Background(), scriptDoc(`document.title = "changed";`))
	assert.Equal(t, "체크리스트", result.Title)
}

func TestScriptRunnerWithoutDOMStorage(t *testing.T) {
	settings := DefaultSettings()
	settings.DOMStorageEnabled = false
	storage := NewMemoryStorage()
	runner := NewScriptRunner(settings, storage, nil)

	result := runner.Run(context.Background(), scriptDoc(
		`document.title = String(localStorage === null);`,
	))

	assert.Equal(t, "true", result.Title)
}
