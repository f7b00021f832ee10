package leveling

import "fmt"

// standardCosts is the XP needed to clear each level of the standard curve, level 1 first.
// Early levels are cheap and the cost climbs until it meets the flat tail.
var standardCosts = [...]int64{
	2000,  // 1
	4000,  // 2
	6000,  // 3
	8000,  // 4
	10000, // 5
	12000, // 6
	14000, // 7
	16000, // 8
	18000, // 9
	20000, // 10
	25000, // 11
	30000, // 12
	34000, // 13
	38000, // 14
	42000, // 15
	44000, // 16
	50000, // 17
	52000, // 18
	55000, // 19
	58000, // 20
	60000, // 21
	60000, // 22
	60000, // 23
	60000, // 24
	60000, // 25
}

// StandardTable returns the canonical 25-tier curve with a 60000 XP tail.
// Level 25 starts at 778000 XP and the table ends at 838000 XP.
func StandardTable() *Table {
	t, err := NewTableFromCosts(standardCosts[:], StandardTailCost)
	if err != nil {
		panic(err)
	}
	return t
}

// LegacyTable returns the older flat curve: LegacyMaxEarlyLevel levels at
// LegacyFlatCost each, then LegacyTailCost per level.
func LegacyTable() *Table {
	costs := make([]int64, LegacyMaxEarlyLevel)
	for i := range costs {
		costs[i] = LegacyFlatCost
	}
	t, err := NewTableFromCosts(costs, LegacyTailCost)
	if err != nil {
		panic(err)
	}
	return t
}

// TableByName returns a built-in curve
func TableByName(name string) (*Table, error) {
	switch name {
	case CurveStandard, "":
		return StandardTable(), nil
	case CurveLegacy:
		return LegacyTable(), nil
	default:
		return nil, fmt.Errorf("unknown curve %q", name)
	}
}
