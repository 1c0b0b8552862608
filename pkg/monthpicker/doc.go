// Package monthpicker provides a terminal month picker built on bubbletea.
//
// It contains:
//   - [Month], a calendar month value exchanged as a canonical "YYYY-MM" string ([Parse], [Month.String])
//   - [Model], a controlled component with a trigger line and a popover holding a
//     year stepper and a 3x4 month grid
//
// Hosts embed [Model] in their own bubbletea model, forward messages to
// [Model.Update] and render [Model.View]. Picks are reported through the
// onChange callback passed to [New] and as a [SelectedMsg].
package monthpicker
