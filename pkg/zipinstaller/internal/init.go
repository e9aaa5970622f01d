// Package internal contains the SDL plumbing of the installer UI: window and
// renderer setup, fonts, text drawing, keyboard translation, theming and
// logging. Types and functions in this package are not part of the public API.
package internal
