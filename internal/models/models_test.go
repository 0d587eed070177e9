package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeInterval_Contains(t *testing.T) {
	i := TimeInterval{
		Start: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
	}

	assert.True(t, i.Contains(i.Start))
	assert.True(t, i.Contains(i.End))
	assert.True(t, i.Contains(i.Start.Add(30*time.Minute)))
	assert.False(t, i.Contains(i.Start.Add(-time.Minute)))
	assert.False(t, i.Contains(i.End.Add(time.Minute)))
}

func TestBookingRequest_EventTimes(t *testing.T) {
	req := BookingRequest{Date: "2026-03-02", Time: "10:00"}

	start, end, err := req.EventTimes(time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC), end)
}

func TestBookingRequest_EventTimesCustomDuration(t *testing.T) {
	req := BookingRequest{Date: "2026-03-02", Time: "10:00", DurationMinutes: 90}

	start, end, err := req.EventTimes(time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, 90*time.Minute, end.Sub(start))
}

func TestBookingRequest_EventTimesBadInput(t *testing.T) {
	_, _, err := (&BookingRequest{Date: "03/02/2026", Time: "10:00"}).EventTimes(time.UTC)
	assert.Error(t, err)

	_, _, err = (&BookingRequest{Date: "2026-03-02", Time: "ten"}).EventTimes(time.UTC)
	assert.Error(t, err)
}

func TestBookingResult_SimulatedNotSerialized(t *testing.T) {
	data, err := json.Marshal(BookingResult{Success: true, Simulated: true, Message: "simulated"})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"simulated"}`, string(data))
}

func TestBookingResult_EventIDKey(t *testing.T) {
	data, err := json.Marshal(BookingResult{Success: true, EventID: "evt-1"})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"eventId":"evt-1"}`, string(data))
}
