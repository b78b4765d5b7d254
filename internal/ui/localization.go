package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyUpdateTitle    = "update_title"
	KeyUpdateMessage  = "update_message"
	KeyUpdateConfirm  = "update_confirm"
	KeyUpdateDismiss  = "update_dismiss"
	KeyPageLoadFailed = "page_load_failed"
	KeyPullToRefresh  = "pull_to_refresh"
	KeyOpenInBrowser  = "open_in_browser"
	KeyUntitledPage   = "untitled_page"
)

// Language codes
const (
	LanguageKorean  = "ko"
	LanguageEnglish = "en"
)

// NewLocalization creates a new localization manager, Korean by default
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LanguageKorean,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; Korean is kept for unknown codes
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to Korean
	if text, found := l.texts[LanguageKorean][key]; found {
		return text
	}

	return key
}

// Format returns the localized text for key formatted with args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts[LanguageKorean] = map[string]string{
		KeyAppTitle:       "NEIS 도우미",
		KeyUpdateTitle:    "업데이트 알림",
		KeyUpdateMessage:  "새 버전 %s이 있습니다.\n업데이트하시겠습니까?",
		KeyUpdateConfirm:  "업데이트",
		KeyUpdateDismiss:  "나중에",
		KeyPageLoadFailed: "페이지를 불러오지 못했습니다",
		KeyPullToRefresh:  "당겨서 새로고침",
		KeyOpenInBrowser:  "브라우저에서 열기",
		KeyUntitledPage:   "제목 없음",
	}

	l.texts[LanguageEnglish] = map[string]string{
		KeyAppTitle:       "NEIS Helper",
		KeyUpdateTitle:    "Update available",
		KeyUpdateMessage:  "Version %s is available.\nWould you like to update?",
		KeyUpdateConfirm:  "Update",
		KeyUpdateDismiss:  "Later",
		KeyPageLoadFailed: "The page could not be loaded",
		KeyPullToRefresh:  "Pull to refresh",
		KeyOpenInBrowser:  "Open in browser",
		KeyUntitledPage:   "Untitled",
	}
}
