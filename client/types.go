package client

// Publication from GET /api/publications.
type Publication struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Authors  []string `json:"authors,omitempty"`
	Venue    string   `json:"venue,omitempty"`
	Year     int      `json:"year,omitempty"`
	DOI      string   `json:"doi,omitempty"`
	URL      string   `json:"url,omitempty"`
	Abstract string   `json:"abstract,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// Award from GET /api/awards.
type Award struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Issuer      string `json:"issuer,omitempty"`
	Year        int    `json:"year,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Conference is a talk or poster from GET /api/conferences.
type Conference struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Event    string   `json:"event,omitempty"`
	Location string   `json:"location,omitempty"`
	Date     string   `json:"date,omitempty"`
	Year     int      `json:"year,omitempty"`
	URL      string   `json:"url,omitempty"`
	Abstract string   `json:"abstract,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// Media is a press or video appearance from GET /api/media.
type Media struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Outlet  string `json:"outlet,omitempty"`
	Kind    string `json:"kind,omitempty"` // article, video, podcast
	Date    string `json:"date,omitempty"`
	Year    int    `json:"year,omitempty"`
	URL     string `json:"url,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// CV from GET /api/cv.
type CV struct {
	Name     string      `json:"name"`
	Headline string      `json:"headline,omitempty"`
	Summary  string      `json:"summary,omitempty"`
	Sections []CVSection `json:"sections,omitempty"`
}

// CVSection groups CV items under a heading such as "Education".
type CVSection struct {
	Title string   `json:"title"`
	Items []CVItem `json:"items"`
}

// CVItem is one line of a CV section.
type CVItem struct {
	Title       string `json:"title"`
	Org         string `json:"org,omitempty"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"`
}

// ErrorResponse is the error body returned by the portfolio API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
