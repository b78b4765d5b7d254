package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/insushim/neis-helper/internal/model"
)

// UpdatePrompt holds the localized texts of the update dialog
type UpdatePrompt struct {
	Title   string
	Message string
	Confirm string
	Dismiss string
}

// NewUpdatePrompt renders the dialog texts for offer
func NewUpdatePrompt(offer model.UpdateOffer, localization *Localization) UpdatePrompt {
	return UpdatePrompt{
		Title:   localization.GetText(KeyUpdateTitle),
		Message: localization.Format(KeyUpdateMessage, offer.Version),
		Confirm: localization.GetText(KeyUpdateConfirm),
		Dismiss: localization.GetText(KeyUpdateDismiss),
	}
}

// NewUpdateDialog builds the confirmation shown when a different version is
// published. Confirming hands the download URL to open; dismissing does nothing.
func NewUpdateDialog(offer model.UpdateOffer, localization *Localization, open func(string), parent fyne.Window) *dialog.ConfirmDialog {
	prompt := NewUpdatePrompt(offer, localization)
	d := dialog.NewConfirm(prompt.Title, prompt.Message, updateChoice(offer, open), parent)
	d.SetConfirmText(prompt.Confirm)
	d.SetDismissText(prompt.Dismiss)
	return d
}

func updateChoice(offer model.UpdateOffer, open func(string)) func(bool) {
	return func(confirmed bool) {
		if confirmed && open != nil {
			open(offer.DownloadURL)
		}
	}
}
