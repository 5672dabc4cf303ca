package barchart

const (
	DefaultChartColor     = "#b44666"
	DefaultLabelsColor    = "#fff"
	DefaultTargetColor    = "rgba(255,255,255,0.25)"
	DefaultYAxisLineColor = "rgba(255,255,255,0.25)"
	DefaultLoadingColor   = "#020202"
)
