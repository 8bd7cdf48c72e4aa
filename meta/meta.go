// meta/meta.go
package meta

// NUMBER_OF_ROWS defines the default board height.
const NUMBER_OF_ROWS = 8

// NUMBER_OF_COLUMNS defines the default board width.
const NUMBER_OF_COLUMNS = 8

// MIN_NUMBER_OF_COINS defines the fewest coins a black piece starts with.
const MIN_NUMBER_OF_COINS = 3

// MAX_NUMBER_OF_COINS defines the most coins a black piece starts with.
const MAX_NUMBER_OF_COINS = 7

// BLACK_PIECES defines the default size of the black team.
const BLACK_PIECES = 5

// MAX_ROUNDS defines how many rounds the engine plays before giving up.
const MAX_ROUNDS = 10000
