// Package ui is the widget and input core of the toolkit.
//
// Applications place widgets into grid cells through a Manager, which
// owns the widget registry, the Overview/Focus/Popup mode machine, and
// keyboard dispatch. Widgets are behavior objects implementing the small
// Widget interface; the Manager hands each one a Frame (a clipped canvas
// plus its color rules and selection state) when it is time to draw.
//
// The Manager is strictly single-threaded: one event is read, dispatched
// and redrawn before the next is read. Background goroutines interact
// with it only through Screen.PostEvent or a LoadingPopup's Stop.
package ui
