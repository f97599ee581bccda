package models

type Provider struct {
	ID                string   `bson:"_id" json:"id"`
	Name              string   `bson:"name" json:"name"`
	Role              string   `bson:"role" json:"role"`
	Bio               string   `bson:"bio,omitempty" json:"bio,omitempty"`
	PhotoURL          string   `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`
	PrimaryLocationID string   `bson:"primary_location_id" json:"primaryLocationId"`
	PtoCalendarID     string   `bson:"pto_calendar_id" json:"ptoCalendarId"`
	HolidayCalendarID string   `bson:"holiday_calendar_id" json:"holidayCalendarId"`
	ShiftPlanIDs      []string `bson:"shift_plan_ids,omitempty" json:"shiftPlanIds,omitempty"`
}
