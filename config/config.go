package config

import (
	"fmt"

	"gotcha/game"
	"gotcha/meta"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config is everything the driver needs to start a match.
type Config struct {
	LogLevel zerolog.Level
	Seed     uint64 // 0 picks a random seed
	MaxDepth int
	Setup    game.GameSetup
}

type playerFile struct {
	Type              string `mapstructure:"type"`
	Name              string `mapstructure:"name"`
	SpriteKey         string `mapstructure:"spriteKey"`
	SpriteFrame       int    `mapstructure:"spriteFrame"`
	SpriteFrameChosen int    `mapstructure:"spriteFrameChosen"`
	NumPieces         int    `mapstructure:"numPieces"`
	NumChosenPieces   int    `mapstructure:"numChosenPieces"`
}

// defaultPlayers is the standard roster in file form.
func defaultPlayers() []playerFile {
	setup := game.DefaultSetup()
	players := make([]playerFile, len(setup.Players))
	for i, p := range setup.Players {
		players[i] = playerFile{
			Type:              p.Type.String(),
			Name:              p.Name,
			SpriteKey:         p.SpriteKey,
			SpriteFrame:       p.SpriteFrame,
			SpriteFrameChosen: p.SpriteFrameChosen,
			NumPieces:         p.NumPieces,
			NumChosenPieces:   p.NumChosenPieces,
		}
	}
	return players
}

func setDefaults(v *viper.Viper) {
	setup := game.DefaultSetup()

	v.SetDefault("logLevel", "info")
	v.SetDefault("seed", 0)
	v.SetDefault("maxDepth", meta.DEFAULT_MAX_DEPTH)

	v.SetDefault("board.width", setup.BoardWidth)
	v.SetDefault("board.height", setup.BoardHeight)
	v.SetDefault("captureFriendlyPieces", setup.CaptureFriendlyPieces)

	players := make([]map[string]any, 0, len(setup.Players))
	for _, p := range defaultPlayers() {
		players = append(players, map[string]any{
			"type":              p.Type,
			"name":              p.Name,
			"spriteKey":         p.SpriteKey,
			"spriteFrame":       p.SpriteFrame,
			"spriteFrameChosen": p.SpriteFrameChosen,
			"numPieces":         p.NumPieces,
			"numChosenPieces":   p.NumChosenPieces,
		})
	}
	v.SetDefault("players", players)
}

// Path returns the config file found in the XDG config directories, or ""
// when there is none.
func Path() string {
	path, err := xdg.SearchConfigFile(meta.CONFIG_FILE)
	if err != nil {
		return ""
	}
	return path
}

// Load reads the config file at path, or when path is empty the one named by
// GOTCHA_CONFIG or found by Path. Keys missing from the file, or a missing
// file when none was requested, fall back to the standard 13x13 match.
// GOTCHA_LOG_LEVEL, GOTCHA_SEED and GOTCHA_MAX_DEPTH override the file.
func Load(path string) (*Config, error) {
	overrides, err := parseEnv()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	if path == "" {
		path = overrides.Path
	}
	if path == "" {
		path = Path()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	overrides.apply(v)

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	level, err := zerolog.ParseLevel(v.GetString("logLevel"))
	if err != nil {
		return nil, fmt.Errorf("logLevel: %w", err)
	}

	var entries []map[string]any
	if err := v.UnmarshalKey("players", &entries); err != nil {
		return nil, fmt.Errorf("players: %w", err)
	}
	if len(entries) != 2 {
		return nil, fmt.Errorf("%w: need exactly 2 players, got %d", game.ErrInvalidSetup, len(entries))
	}

	// A file's players list replaces the default one as a whole, so each
	// entry is decoded over the default seat to keep the keys it omits.
	players := defaultPlayers()
	for i, entry := range entries {
		if err := decodePlayer(entry, &players[i]); err != nil {
			return nil, fmt.Errorf("players[%d]: %w", i, err)
		}
	}

	setup := game.GameSetup{
		BoardWidth:            v.GetInt("board.width"),
		BoardHeight:           v.GetInt("board.height"),
		CaptureFriendlyPieces: v.GetBool("captureFriendlyPieces"),
	}
	for i, p := range players {
		typ, err := game.ParsePlayerType(p.Type)
		if err != nil {
			return nil, fmt.Errorf("players[%d]: %w", i, err)
		}
		setup.Players[i] = game.PlayerSetup{
			Type:              typ,
			Name:              p.Name,
			SpriteKey:         p.SpriteKey,
			SpriteFrame:       p.SpriteFrame,
			SpriteFrameChosen: p.SpriteFrameChosen,
			NumPieces:         p.NumPieces,
			NumChosenPieces:   p.NumChosenPieces,
		}
	}
	if err := setup.Validate(); err != nil {
		return nil, err
	}

	maxDepth := v.GetInt("maxDepth")
	if maxDepth < 0 {
		return nil, fmt.Errorf("maxDepth must not be negative, got %d", maxDepth)
	}

	return &Config{
		LogLevel: level,
		Seed:     v.GetUint64("seed"),
		MaxDepth: maxDepth,
		Setup:    setup,
	}, nil
}

func decodePlayer(entry map[string]any, p *playerFile) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           p,
	})
	if err != nil {
		return err
	}
	return dec.Decode(entry)
}
