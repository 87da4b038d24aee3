package models

// RawActivity mirrors one news row as the data API emits it. Historical
// rows are inconsistent: image/video may be a bare string, a JSON-encoded
// array string or a native array, participants/staff may be newline-joined
// text or a pre-parsed list, and the cover image appears under either a
// camelCase or a snake_case key. Ambiguous fields are kept as `any` and
// resolved by the normalizer.
type RawActivity struct {
	ID               any    `json:"id"`
	Title            string `json:"title"`
	Subtitle         string `json:"subtitle"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Location         string `json:"location"`
	Organizer        string `json:"organizer"`
	CoOrganizer      string `json:"coOrganizer"`
	Sponsor          string `json:"sponsor"`
	Purpose          string `json:"purpose"`
	EventGoal        string `json:"eventGoal"`
	Content          string `json:"content"`
	CoreFunction     string `json:"coreFunction"`
	Highlights       string `json:"highlights"`
	Participants     any    `json:"participants"`
	Staff            any    `json:"staff"`
	ParticipantsList any    `json:"participants_list"`
	StaffList        any    `json:"staff_list"`
	Image            any    `json:"image"`
	Video            any    `json:"video"`
	CoverImage       string `json:"coverImage"`
	CoverImageLegacy string `json:"cover_image"`
	EventScale       string `json:"eventScale"`
	EventFee         string `json:"eventFee"`
	ContactPhone     string `json:"contactPhone"`
	RegistrationLink string `json:"registrationLink"`
	OfficialWebsite  string `json:"officialWebsite"`
	Category         string `json:"category"`
	CreatedAt        int64  `json:"createdAt"`
}

// RawArticle mirrors one article row as the data API emits it.
type RawArticle struct {
	ID        any    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Link      string `json:"link"`
	Category  string `json:"category"`
	Date      string `json:"date"`
	Author    string `json:"author"`
	CreatedAt int64  `json:"createdAt"`
}

// Envelope is the response shape of the data API. On success the payload
// carries the record lists keyed by content type.
type Envelope struct {
	Success bool            `json:"success"`
	Data    EnvelopePayload `json:"data"`
	Message string          `json:"message,omitempty"`
}

// EnvelopePayload holds the per-type record lists of an Envelope.
type EnvelopePayload struct {
	Articles []RawArticle  `json:"articles,omitempty"`
	News     []RawActivity `json:"news,omitempty"`
}
