// test/benchmarks/helpers.go
package benchmarks

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lilithmonodia/winestock-be/internal/core/domain"
)

var benchWineNames = []string{
	"Chateau Margaux",
	"Romanée-Conti",
	"Chablis Grand Cru Les Clos",
	"Dom Pérignon Vintage",
	"Pommard Premier Cru",
	"Sancerre Blanc",
	"Bandol Rosé",
	"Gevrey-Chambertin",
	"Meursault Charmes",
	"Côte-Rôtie La Landonne",
}

var benchVolumes = []float64{37.5, 75, 150, 300}

var benchColors = []string{"ROUGE", "BLANC", "ROSE", "CHAMPAGNE"}

// newBenchWine builds a valid wine deterministically from an index. All wines
// share the same year so they can be grouped into one assortment.
func newBenchWine(i int) *domain.Wine {
	wine, err := domain.NewWine(
		fmt.Sprintf("%s %d", benchWineNames[i%len(benchWineNames)], i),
		2018,
		benchVolumes[i%len(benchVolumes)],
		benchColors[i%len(benchColors)],
		decimal.NewFromInt(int64(20+i*5)),
	)
	if err != nil {
		panic(err)
	}
	wine.SetID(int64(i + 1))
	return wine
}

// createCellarCSV generates a semicolon-separated cellar file in the import
// format, header included.
func createCellarCSV(numRows int) []byte {
	var content strings.Builder

	content.WriteString("name;year;volume;color;price;comment\n")
	for i := 0; i < numRows; i++ {
		content.WriteString(fmt.Sprintf("%s %d;%d;%g;%s;%d.00;lot %d\n",
			benchWineNames[i%len(benchWineNames)], i,
			2018,
			benchVolumes[i%len(benchVolumes)],
			benchColors[i%len(benchColors)],
			20+i*5,
			i+1,
		))
	}

	return []byte(content.String())
}
