// Package internal contains the core infrastructure for the sfoglia UI framework.
// This includes SDL initialization, input processing, theming, localization, and
// rendering utilities. Types and functions in this package are not part of the
// public API.
package internal

import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
