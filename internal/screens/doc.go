// Package screens contains the full-body screens stacked by the core model:
// the home page, the settings grid and the value editor.
package screens
