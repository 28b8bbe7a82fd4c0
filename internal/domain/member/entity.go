package member

// Member is one registered TAGANA volunteer from the published sheet.
type Member struct {
	PhotoURL string
	Name     string
	MemberID string
	District string
}

// Officer is one member of the posko command structure.
type Officer struct {
	Name     string
	Position string
	PhotoURL string
}
