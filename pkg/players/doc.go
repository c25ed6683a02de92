// Package players generates person names.
//
// NewFirstNames and NewLastNames return uniform generators over the
// first_names and last_names datasets. Names combines them into full names:
//
//	names, err := players.NewNames(ctx, dataset.Default())
//	if err != nil {
//		return err
//	}
//	roster, err := names.Generate(12, players.DefaultAlliterationRate)
//
// With probability alliterationRate a name is made alliterative: the last
// name is redrawn until its first letter matches the first name's. Redraws
// are capped, see WithMaxRedraws.
package players
