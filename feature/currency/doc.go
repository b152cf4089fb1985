// Package currency serves the display currency table: the supported codes, code autocompletion
// and conversion of USD amounts into formatted strings.
package currency
