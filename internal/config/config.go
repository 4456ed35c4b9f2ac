package config

import "time"

type Config interface {
	HTTPPort() string

	RootDir() string
	DefaultDocument() string

	BufferSize() int
	MaxRequestSize() int
	ReadTimeout() time.Duration

	PprofEnabled() bool
	PprofPort() string
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) HTTPPort() string           { return c.httpPort }
func (c *config) RootDir() string            { return c.rootDir }
func (c *config) DefaultDocument() string    { return c.defaultDocument }
func (c *config) BufferSize() int            { return c.bufferSize }
func (c *config) MaxRequestSize() int        { return c.maxRequestSize }
func (c *config) ReadTimeout() time.Duration { return c.readTimeout }
func (c *config) PprofEnabled() bool         { return c.pprofEnabled }
func (c *config) PprofPort() string          { return c.pprofPort }
