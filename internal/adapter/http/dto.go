package http

// AirportOptionDTO is a selector entry.
type AirportOptionDTO struct {
	Code  string `json:"code" example:"SFO"`
	Label string `json:"label" example:"SFO"`
}

// AirportOptionsResponseDTO lists every airport rendered for one display mode.
type AirportOptionsResponseDTO struct {
	SearchBy string             `json:"searchBy" example:"iata_code"`
	Total    int                `json:"total" example:"2"`
	Airports []AirportOptionDTO `json:"airports"`
}

// SelectedAirportDTO is a selected airport with its label for the current display mode.
type SelectedAirportDTO struct {
	Code  string `json:"code" example:"SFO"`
	Name  string `json:"name" example:"San Francisco International Airport"`
	Label string `json:"label" example:"SFO"`
}

// DayRangeDTO is a trip-length window in days.
type DayRangeDTO struct {
	MinDays int `json:"minDays" example:"2"`
	MaxDays int `json:"maxDays" example:"5"`
}

// SelectionDTO is the selection screen.
type SelectionDTO struct {
	SessionID        string              `json:"sessionId" example:"2f0c1a9e-5b7d-4e4b-9a43-1f1f3c7a2d11"`
	State            string              `json:"state" example:"selecting_criteria"`
	SearchBy         string              `json:"searchBy" example:"iata_code"`
	Departure        *SelectedAirportDTO `json:"departure"`
	Arrival          *SelectedAirportDTO `json:"arrival"`
	StartDate        string              `json:"startDate" example:"2024-06-01"`
	EndDate          string              `json:"endDate" example:"2024-06-10"`
	DayRangeBounds   DayRangeDTO         `json:"dayRangeBounds"`
	DayRange         DayRangeDTO         `json:"dayRange"`
	DayRangeExplicit bool                `json:"dayRangeExplicit" example:"true"`
	Warnings         []string            `json:"warnings"`
	HasCachedResults bool                `json:"hasCachedResults" example:"false"`
}

// CriteriaDTO is the search the results belong to.
type CriteriaDTO struct {
	Departure string `json:"departure" example:"SFO"`
	Arrival   string `json:"arrival" example:"JFK"`
	StartDate string `json:"startDate" example:"2024-06-01"`
	EndDate   string `json:"endDate" example:"2024-06-10"`
	MinDays   int    `json:"minDays" example:"2"`
	MaxDays   int    `json:"maxDays" example:"5"`
}

// PriceGraphRowDTO is one priced date combination.
type PriceGraphRowDTO struct {
	Index      int     `json:"index" example:"0"`
	StartDate  string  `json:"startDate" example:"2024-06-01"`
	ReturnDate string  `json:"returnDate" example:"2024-06-04"`
	Price      float64 `json:"price" example:"100"`
}

// PriceBoundsDTO are the limits of the price ceiling slider.
type PriceBoundsDTO struct {
	Min float64 `json:"min" example:"100"`
	Max float64 `json:"max" example:"400"`
}

// ResultsDTO is the results screen.
type ResultsDTO struct {
	SessionID    string             `json:"sessionId" example:"2f0c1a9e-5b7d-4e4b-9a43-1f1f3c7a2d11"`
	State        string             `json:"state" example:"filtering"`
	Criteria     CriteriaDTO        `json:"criteria"`
	Rows         []PriceGraphRowDTO `json:"rows"`
	ShownRows    int                `json:"shownRows" example:"1"`
	TotalRows    int                `json:"totalRows" example:"3"`
	PriceBounds  PriceBoundsDTO     `json:"priceBounds"`
	PriceCeiling float64            `json:"priceCeiling" example:"200"`
	MaxDuration  *int               `json:"maxDuration"`
	FirstDate    string             `json:"firstDate" example:"2024-06-01"`
	LastDate     string             `json:"lastDate" example:"2024-06-10"`
	FetchedAt    string             `json:"fetchedAt" example:"2024-05-20T10:00:00Z"`
}

// ScreenDTO is whichever screen a session is on; exactly one of Selection and Results is set.
type ScreenDTO struct {
	State     string        `json:"state" example:"selecting_criteria"`
	Selection *SelectionDTO `json:"selection,omitempty"`
	Results   *ResultsDTO   `json:"results,omitempty"`
}
