// Package pkgbase converts unsigned integers of arbitrary size between
// textual representations in bases 2 through 36.
//
// Values are carried as *big.Int so conversions never truncate, no matter
// how long the input digit string is. Digits above 9 use the letters a-z;
// parsing is case-insensitive, formatting always emits lowercase.
package pkgbase
