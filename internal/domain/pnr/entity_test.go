package pnr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassenger_Display(t *testing.T) {
	tests := []struct {
		name string
		pax  Passenger
		want string
	}{
		{
			name: "敬称付きの大人",
			pax:  Passenger{LastName: "DOE", FirstName: "JOHN", Type: PaxAdult, Title: "MR"},
			want: "DOE/JOHN MR",
		},
		{
			name: "敬称なしの大人",
			pax:  Passenger{LastName: "DOE", FirstName: "JANE", Type: PaxAdult},
			want: "DOE/JANE",
		},
		{
			name: "年齢付きの小児",
			pax:  Passenger{LastName: "DOE", FirstName: "JIM", Type: PaxChild, Age: 10},
			want: "DOE/JIM (CHD/10)",
		},
		{
			name: "年齢なしの小児",
			pax:  Passenger{LastName: "DOE", FirstName: "JIM", Type: PaxChild},
			want: "DOE/JIM (CHD)",
		},
		{
			name: "幼児",
			pax:  Passenger{LastName: "DOE", FirstName: "BABY", Type: PaxInfant},
			want: "DOE/BABY (INF)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pax.Display())
		})
	}
}

func TestPNR_AdultCount(t *testing.T) {
	p := New()
	assert.Equal(t, 0, p.AdultCount())

	p.Passengers = []Passenger{
		{LastName: "DOE", FirstName: "JOHN", Type: PaxAdult, InfantParent: -1},
		{LastName: "DOE", FirstName: "JIM", Type: PaxChild, InfantParent: -1},
		{LastName: "DOE", FirstName: "BABY", Type: PaxInfant, InfantParent: 0},
	}
	assert.Equal(t, 1, p.AdultCount())
}

func TestPNR_InfantLinkedTo(t *testing.T) {
	p := New()
	p.Passengers = []Passenger{
		{LastName: "DOE", FirstName: "JOHN", Type: PaxAdult, InfantParent: -1},
		{LastName: "DOE", FirstName: "JANE", Type: PaxAdult, InfantParent: -1},
		{LastName: "DOE", FirstName: "BABY", Type: PaxInfant, InfantParent: 0},
	}
	assert.True(t, p.InfantLinkedTo(0))
	assert.False(t, p.InfantLinkedTo(1))
}

func TestPNR_ActiveSegments(t *testing.T) {
	p := New()
	p.Itinerary = []Segment{
		{Carrier: "PC", FlightNo: 751, Status: SegmentHeld},
		{Carrier: "SV", FlightNo: 380, Status: SegmentCancelled},
		{Carrier: "AH", FlightNo: 4038, Status: SegmentCancelledByCarrier},
	}
	assert.Equal(t, []int{0}, p.ActiveSegmentIndexes())
	assert.True(t, p.HasActiveSegment())

	p.Itinerary[0].Status = SegmentCancelled
	assert.False(t, p.HasActiveSegment())
}

func TestPNR_LastOpenTicket(t *testing.T) {
	p := New()
	require.Nil(t, p.LastOpenTicket())

	p.Tickets = []Ticket{
		{Number: "172-0000000001", TSTID: 1, Status: TicketVoid},
		{Number: "172-0000000002", TSTID: 1, Status: TicketIssued},
	}
	got := p.LastOpenTicket()
	require.NotNil(t, got)
	assert.Equal(t, "172-0000000002", got.Number)

	assert.Nil(t, p.OpenTicketForTST(2))
	require.NotNil(t, p.OpenTicketForTST(1))
}
