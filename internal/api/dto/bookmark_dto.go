package dto

// FavoriteToggleResponse reports the resulting favorite state after a toggle.
type FavoriteToggleResponse struct {
	TicketID string `json:"ticket_id"`
	Favorite bool   `json:"favorite"`
}

// TicketIDListResponse is a bare list of ticket ids, used for favorites and
// recently-viewed lookups.
type TicketIDListResponse struct {
	TicketIDs []string `json:"ticket_ids"`
}
