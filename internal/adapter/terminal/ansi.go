package terminal

const (
	ansiReset     = "\033[0m"
	ansiClear     = "\033[H\033[2J"
	ansiPlayer    = "\033[1;33m"
	ansiTree      = "\033[92m"
	ansiRiver     = "\033[96m"
	ansiIce       = "\033[36m"
	ansiLog       = "\033[33m"
	ansiStockpile = "\033[33m"
	ansiDim       = "\033[90m"
)

var periodColors = map[string]string{
	"dawn":      "\033[38;5;216m",
	"morning":   "\033[93m",
	"afternoon": "\033[97m",
	"dusk":      "\033[38;5;129m",
	"night":     "\033[34m",
}
