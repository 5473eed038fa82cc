// meta/meta.go
package meta

// NUM_DICE is the number of dice rolled each turn.
const NUM_DICE = 2

// DEFAULT_MAX_DEPTH is how many extra dice a move search may chain after the first.
const DEFAULT_MAX_DEPTH = 2

// MAX_COMMANDS bounds how many commands a driven match accepts.
const MAX_COMMANDS = 10000

const CONFIG_FILE = "gotcha/config.yaml"
