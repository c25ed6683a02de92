// Package geography generates place names for teams.
//
// Every generator reads the cities or states list of one locale from a
// dataset.Provider. The lists are ordered from most to least populous, which
// lets the biased modes favor one end of the list:
//
//	cities       whole city list, uniform
//	bigcities    first third of the cities, biased to the front
//	smalltowns   last two thirds of the cities, biased to the back
//	states       whole state list, uniform
//	bigstates    first half of the states, biased to the front
//	smallstates  last half of the states, biased to the back
//
// Usage:
//
//	gen, err := geography.New(ctx, dataset.Default(), geography.BigCities, "usa")
//	if err != nil {
//		return err
//	}
//	places, err := gen.Generate(8)
//
// Size errors are reported as *GeographyError, which names the locale and
// still matches sampler.ErrInvalidSize.
package geography
