package dataset

import "fmt"

// RoomLabel returns the room for the i-th (1-based) bed of a house:
// 1 -> Room 1A, 2 -> Room 1B, 3 -> Room 2A, ...
func RoomLabel(i int) string {
	suffix := "A"
	if i%2 == 0 {
		suffix = "B"
	}
	return fmt.Sprintf("Room %d%s", (i+1)/2, suffix)
}

// GenerateBeds expands every house into TotalBeds beds. Bed ids run
// sequentially across houses; tenant linkage is left empty.
func GenerateBeds(rng Rand, houses []House) []Bed {
	var beds []Bed
	counter := 1

	for _, house := range houses {
		for i := 1; i <= house.TotalBeds; i++ {
			beds = append(beds, Bed{
				BedID:      fmt.Sprintf("bed_%03d", counter),
				HouseID:    house.HouseID,
				RoomNumber: RoomLabel(i),
				Status:     drawBedStatus(rng),
			})
			counter++
		}
	}

	return beds
}

// 70% occupied, 20% available, remaining 10% split between pending and hold
func drawBedStatus(rng Rand) BedStatus {
	r := rng.Float64()
	switch {
	case r < 0.7:
		return StatusOccupied
	case r < 0.9:
		return StatusAvailable
	default:
		return BedStatus(rng.RandomString([]string{string(StatusPending), string(StatusHold)}))
	}
}
