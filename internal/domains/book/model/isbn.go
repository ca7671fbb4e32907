package model

import "regexp"

const (
	MinISBNLength = 17
	MaxISBNLength = 26
)

var (
	isbnPrefix = regexp.MustCompile(`^ISBN(?:-13)?:? `)
	isbn13     = regexp.MustCompile(`^97[89]-?[0-9]{1,5}-?[0-9]+-?[0-9]+-?[0-9]$`)
	digitsOnly = regexp.MustCompile(`^[0-9]{13}$`)
	hyphenated = regexp.MustCompile(`^(?:[0-9]+-){4}[0-9]+$`)
)

// IsISBN13 accepts an ISBN-13, either as 13 plain digits or as 17
// characters with four hyphens, optionally preceded by "ISBN ",
// "ISBN: ", "ISBN-13 " or "ISBN-13: ".
func IsISBN13(value string) bool {
	number := isbnPrefix.ReplaceAllString(value, "")
	if !digitsOnly.MatchString(number) && !(len(number) == 17 && hyphenated.MatchString(number)) {
		return false
	}
	return isbn13.MatchString(number)
}
