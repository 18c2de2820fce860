package schedulingv1

// Dates travel as "YYYY-MM-DD", wall clock as "HH:MM", instants as ISO-8601 UTC.

type ItemContext struct {
	Day          *int32 `json:"day,omitempty"`
	SpecificTime string `json:"specificTime,omitempty"`
	TimeOfDay    string `json:"timeOfDay,omitempty"`
}

func (x *ItemContext) GetDay() (int32, bool) {
	if x == nil || x.Day == nil {
		return 0, false
	}
	return *x.Day, true
}

func (x *ItemContext) GetSpecificTime() string {
	if x == nil {
		return ""
	}
	return x.SpecificTime
}

func (x *ItemContext) GetTimeOfDay() string {
	if x == nil {
		return ""
	}
	return x.TimeOfDay
}

type SuggestScheduleRequest struct {
	TripId   string       `json:"tripId"`
	Category string       `json:"category"`
	Type     string       `json:"type"`
	Context  *ItemContext `json:"context,omitempty"`
}

func (x *SuggestScheduleRequest) GetTripId() string {
	if x == nil {
		return ""
	}
	return x.TripId
}

func (x *SuggestScheduleRequest) GetContext() *ItemContext {
	if x == nil {
		return nil
	}
	return x.Context
}

type SuggestScheduleResponse struct {
	Day       int32  `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason"`
}

type ListTripDaysRequest struct {
	TripId string `json:"tripId"`
}

func (x *ListTripDaysRequest) GetTripId() string {
	if x == nil {
		return ""
	}
	return x.TripId
}

type TripDay struct {
	Day       int32  `json:"day"`
	Date      string `json:"date"`
	DayOfWeek string `json:"dayOfWeek"`
}

type ListTripDaysResponse struct {
	TripId string     `json:"tripId"`
	Days   []*TripDay `json:"days"`
}

type ExportCalendarRequest struct {
	TripId string `json:"tripId"`
}

func (x *ExportCalendarRequest) GetTripId() string {
	if x == nil {
		return ""
	}
	return x.TripId
}

type ExportCalendarResponse struct {
	ContentType string `json:"contentType"`
	Calendar    []byte `json:"calendar"`
}

type CalendarDateToInstantRequest struct {
	Date     string `json:"date"`
	TimeZone string `json:"timeZone,omitempty"`
	Boundary string `json:"boundary,omitempty"`
}

type CalendarDateToInstantResponse struct {
	Instant string `json:"instant"`
}

type InstantToWallDateTimeRequest struct {
	Instant  string `json:"instant"`
	TimeZone string `json:"timeZone,omitempty"`
}

type InstantToWallDateTimeResponse struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	TimeZone string `json:"timeZone"`
}

type WallDateTimeToInstantRequest struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	TimeZone string `json:"timeZone,omitempty"`
}

type WallDateTimeToInstantResponse struct {
	Instant string `json:"instant"`
}
