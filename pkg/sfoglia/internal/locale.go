package internal

import (
	"os"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs for the framework's built-in strings.
const (
	MsgPullToRefresh  = "refresh.pull"
	MsgReleaseRefresh = "refresh.release"
	MsgRefreshing     = "refresh.refreshing"
	MsgLoading        = "state.loading"
	MsgEmpty          = "state.empty"
	MsgError          = "state.error"
	MsgRetry          = "state.retry"
)

var (
	localeOnce sync.Once
	localizer  *i18n.Localizer
)

func initLocale() {
	bundle := i18n.NewBundle(language.English)

	bundle.AddMessages(language.English,
		&i18n.Message{ID: MsgPullToRefresh, Other: "Pull to refresh"},
		&i18n.Message{ID: MsgReleaseRefresh, Other: "Release to refresh"},
		&i18n.Message{ID: MsgRefreshing, Other: "Refreshing…"},
		&i18n.Message{ID: MsgLoading, Other: "Loading…"},
		&i18n.Message{ID: MsgEmpty, Other: "Nothing here yet"},
		&i18n.Message{ID: MsgError, Other: "Something went wrong"},
		&i18n.Message{ID: MsgRetry, Other: "Press A to retry"},
	)

	bundle.AddMessages(language.Italian,
		&i18n.Message{ID: MsgPullToRefresh, Other: "Trascina per aggiornare"},
		&i18n.Message{ID: MsgReleaseRefresh, Other: "Rilascia per aggiornare"},
		&i18n.Message{ID: MsgRefreshing, Other: "Aggiornamento…"},
		&i18n.Message{ID: MsgLoading, Other: "Caricamento…"},
		&i18n.Message{ID: MsgEmpty, Other: "Niente da mostrare"},
		&i18n.Message{ID: MsgError, Other: "Qualcosa è andato storto"},
		&i18n.Message{ID: MsgRetry, Other: "Premi A per riprovare"},
	)

	// LANG is the conventional locale source on the target devices,
	// e.g. "it_IT.UTF-8".
	lang := os.Getenv("LANG")
	if i := strings.IndexAny(lang, "._"); i >= 0 {
		lang = lang[:i]
	}

	localizer = i18n.NewLocalizer(bundle, lang, language.English.String())
}

// T returns the localized string for a framework message ID.
// Unknown IDs are returned as-is.
func T(id string) string {
	localeOnce.Do(initLocale)

	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
