package model

import "strconv"

// Listing holds the store listing metadata for one application, as returned
// by the store catalog collaborator. It is immutable once fetched and scoped
// to a single assessment request.
type Listing struct {
	Title       string
	AppID       string
	Rating      float64
	Installs    string
	ReviewCount int

	// RatingAvailable and InstallsAvailable are false when the store did not
	// expose the corresponding field for this listing.
	RatingAvailable   bool
	InstallsAvailable bool
}

// RatingDisplay renders the rating for the verdict surface, or "N/A" when the
// store did not provide one.
func (l Listing) RatingDisplay() string {
	if !l.RatingAvailable {
		return "N/A"
	}
	return strconv.FormatFloat(l.Rating, 'f', 1, 64)
}

// InstallsDisplay renders the install bucket, or "N/A" when unavailable.
func (l Listing) InstallsDisplay() string {
	if !l.InstallsAvailable || l.Installs == "" {
		return "N/A"
	}
	return l.Installs
}
