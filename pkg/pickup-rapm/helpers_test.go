package pickuprapm_test

import (
	"fmt"

	pickuprapm "github.com/naismith-nerds/go-pickup-rapm/pkg/pickup-rapm"
)

func intp(v int) *int { return &v }

func team(p1, p2, p3, p4, p5 string) [pickuprapm.TeamSize]string {
	return [pickuprapm.TeamSize]string{p1, p2, p3, p4, p5}
}

func row(date string, teamA, teamB [pickuprapm.TeamSize]string, aScore, bScore int) pickuprapm.RawGameRow {
	return pickuprapm.RawGameRow{
		Date:   date,
		TeamA:  teamA,
		TeamB:  teamB,
		AScore: intp(aScore),
		BScore: intp(bScore),
	}
}

// leagueRows builds a deterministic rotation schedule over 12 players,
// 4 games per date. Team A always wins 21 to something between 10 and 20.
func leagueRows(numGames int) []pickuprapm.RawGameRow {
	players := [12]string{"P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8", "P9", "P10", "P11", "P12"}

	rows := make([]pickuprapm.RawGameRow, 0, numGames)
	for i := 0; i < numGames; i++ {
		var teamA, teamB [pickuprapm.TeamSize]string
		for j := 0; j < pickuprapm.TeamSize; j++ {
			teamA[j] = players[(i+j)%12]
			teamB[j] = players[(i+pickuprapm.TeamSize+j)%12]
		}
		date := fmt.Sprintf("2024-02-%02d", 1+i/4)
		rows = append(rows, row(date, teamA, teamB, 21, 10+(i*3)%11))
	}
	return rows
}
