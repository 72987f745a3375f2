package favorites

// FavoritesResponse lists the favorite codes of a visitor
type FavoritesResponse struct {
	Codes []string `json:"codes"`
	Count int      `json:"count"`
}

// ToggleResponse reports the membership of a code after a toggle
type ToggleResponse struct {
	Code     string `json:"code"`
	Favorite bool   `json:"favorite"`
}

// ToFavoritesResponse converts a set to its response
func ToFavoritesResponse(s *Set) *FavoritesResponse {
	codes := s.Codes()
	return &FavoritesResponse{Codes: codes, Count: len(codes)}
}
