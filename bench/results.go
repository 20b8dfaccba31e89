package bench

// Bar counts the poke benchmarks were run with.
var barCounts = []int64{5, 10, 15, 20, 50, 100, 200, 255}

// Poke returns the poke() vs opPoke() gas comparison. The values are the
// results of script/benchmarks/run.sh.
func Poke() Chart {
	return Chart{
		Title:  "Scribe Benchmark Results",
		XLabel: "number of bar",
		YLabel: "(op)poke() gas usage",
		X:      append([]int64(nil), barCounts...),
		Series: []Series{
			{
				Name: "Scribe",
				Values: []int64{
					80280, 105070, 132414, 156983,
					314455, 574227, 1096599, 1382810,
				},
			},
			{
				Name: "ScribeOptimistic",
				Values: []int64{
					68815, 68887, 68944, 69004,
					69791, 71186, 73630, 74735,
				},
			},
		},
		Margins: DefaultMargins,
	}
}
