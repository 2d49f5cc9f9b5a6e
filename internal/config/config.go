// Package config loads the planner's process-wide configuration once, from
// .env files and environment variables, following the same binary-dir-then-
// cwd precedence as the MCS configuration loader.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/sverzijl/planner/internal/domain/entities"
)

// AppConfig holds the complete, immutable application configuration for one
// planner invocation.
type AppConfig struct {
	DataPath string
	LogDir   string

	// ScaleFactor is the coefficient-scaling constant S applied to
	// continuous flow variables during MIP construction (spec.md §4.2
	// "Scaling discipline").
	ScaleFactor int64

	DefaultFrozenShelfLifeDays  int
	DefaultAmbientShelfLifeDays int
	DefaultThawedShelfLifeDays  int

	SolverName      string
	MIPGapRelative  float64
	SolverTimeLimit time.Duration
}

// Load loads configuration from .env (binary directory, then working
// directory) and environment variables, applying documented defaults where
// unset.
func Load() (*AppConfig, error) {
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if loadErr := godotenv.Load(envPath); loadErr == nil {
			log.Debug().Str("path", envPath).Msg("loaded configuration from binary directory")
		}
	}
	if loadErr := godotenv.Load(); loadErr != nil {
		log.Debug().Msg("no .env file found in working directory, relying on environment variables")
	}

	dataPath := getEnv("DATA_PATH", "")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := filepath.Join(dataPath, "logs")
	if mkErr := os.MkdirAll(logDir, 0o755); mkErr != nil {
		log.Warn().Err(mkErr).Str("path", logDir).Msg("failed to create log directory")
	}

	scaleFactor, err := strconv.ParseInt(getEnv("PLANNER_SCALE_FACTOR", "1000"), 10, 64)
	if err != nil || scaleFactor <= 0 {
		scaleFactor = 1000
	}

	mipGap, err := strconv.ParseFloat(getEnv("PLANNER_MIP_GAP", "0"), 64)
	if err != nil || mipGap < 0 {
		mipGap = 0
	}

	timeLimitSecs, err := strconv.Atoi(getEnv("PLANNER_TIME_LIMIT_SECONDS", "300"))
	if err != nil || timeLimitSecs <= 0 {
		timeLimitSecs = 300
	}

	cfg := &AppConfig{
		DataPath:                    dataPath,
		LogDir:                      logDir,
		ScaleFactor:                 scaleFactor,
		DefaultFrozenShelfLifeDays:  entities.DefaultFrozenShelfLifeDays,
		DefaultAmbientShelfLifeDays: entities.DefaultAmbientShelfLifeDays,
		DefaultThawedShelfLifeDays:  entities.DefaultThawedShelfLifeDays,
		SolverName:                  getEnv("PLANNER_SOLVER", "highs"),
		MIPGapRelative:              mipGap,
		SolverTimeLimit:             time.Duration(timeLimitSecs) * time.Second,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
