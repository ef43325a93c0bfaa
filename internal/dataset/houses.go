package dataset

import "fmt"

// DefaultAddresses is the fixed address list houses are generated from
var DefaultAddresses = []string{
	"1234 Pine Street, Seattle, WA 98101",
	"5678 Broadway Ave, Seattle, WA 98102",
	"910 Madison St, Seattle, WA 98104",
	"2345 Summit Ave, Seattle, WA 98122",
}

const (
	MinHouseBeds = 8
	MaxHouseBeds = 15

	houseNoteChance = 0.3
	houseNote       = "Recently renovated"
)

// GenerateHouses builds one house per address, in address order.
//
// Every house draws for a note, but only the first house can receive one;
// a positive draw for any later house still yields an empty note.
func GenerateHouses(rng Rand, addresses []string) []House {
	houses := make([]House, 0, len(addresses))
	for i, address := range addresses {
		n := i + 1
		house := House{
			HouseID:   fmt.Sprintf("house_%d", n),
			Address:   address,
			TotalBeds: rng.Number(MinHouseBeds, MaxHouseBeds),
		}
		if rng.Float64() <= houseNoteChance && n == 1 {
			house.Notes = houseNote
		}
		houses = append(houses, house)
	}
	return houses
}
