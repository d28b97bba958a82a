package skiptesting

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log  logger.Logger
	T    *testing.T
	Seed uint64
}

type TestConfig struct {
	// Seed fixes the generated data so it is the same from run to run.
	Seed            uint64
	TestLabelPrefix string
	LogLevel        string // defaults to NOOP
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	t.Cleanup(logger.OnExit)

	return TestContext{
		T:    t,
		Log:  logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		Seed: cfg.Seed,
	}
}

// Generator returns a TestGenerator seeded from the test configuration.
func (c *TestContext) Generator() *TestGenerator {
	return NewTestGenerator(c.T, c.Seed)
}
