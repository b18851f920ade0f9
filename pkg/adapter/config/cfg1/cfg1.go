// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cfg1 makes it possible to load configuration settings with
// version 1.x.y since all minor and patch versions (which are known)
// with the same major version, can be loaded with one implementation.
// When trying to serialize and write out settings, the latest known
// minor and patch version will be used since older versions (with the
// same major version) can ignore the extra fields too.
package cfg1

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/momeni/ddlwork/pkg/adapter/config/comment"
	"github.com/momeni/ddlwork/pkg/adapter/config/settings"
	"github.com/momeni/ddlwork/pkg/adapter/config/vers"
	catalog "github.com/momeni/ddlwork/pkg/adapter/db/migration"
	"github.com/momeni/ddlwork/pkg/adapter/db/postgres"
	"github.com/momeni/ddlwork/pkg/adapter/db/repofactory"
	"github.com/momeni/ddlwork/pkg/adapter/db/sqlite"
	"github.com/momeni/ddlwork/pkg/adapter/db/syntax"
	"github.com/momeni/ddlwork/pkg/adapter/restful/gin"
	"github.com/momeni/ddlwork/pkg/core/dbscope"
	"github.com/momeni/ddlwork/pkg/core/log"
	"github.com/momeni/ddlwork/pkg/core/model"
	"github.com/momeni/ddlwork/pkg/core/repo"
	"github.com/momeni/ddlwork/pkg/core/uow"
	"github.com/momeni/ddlwork/pkg/core/usecase/migrationuc"
	"gopkg.in/yaml.v3"
)

// These constants define the major, minor, and patch version of the
// configuration settings which are supported by the Config struct.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// Version is the semantic version of Config struct.
var Version = model.SemVer{Major, Minor, Patch}

// These constants are the supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// These defaults are used for the omitted settings.
const (
	DefaultPort           = 5432
	DefaultRole           = "ddlwork"
	DefaultConnectTimeout = settings.Duration(10 * time.Second)
	DefaultAddress        = ":8080"
)

var connectTimeoutBounds = settings.Bounds[settings.Duration]{
	Min: ptr(settings.Duration(time.Second)),
	Max: ptr(settings.Duration(5 * time.Minute)),
}

func ptr[T any](t T) *T {
	return &t
}

// Config contains all settings which are required by different parts
// of the project following the v1.x.y format, such as adapters or
// use cases. It is preferred to implement Config with primitive fields
// or other structs which are defined locally, not models or structs
// which are defined in lower layers, so the configuration can be
// versioned and kept intact while other layers can change freely.
type Config struct {
	Database Database // database connection settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Logger   Logger   // logging level and format
	Usecases Usecases // Configuration settings for supported use cases

	// Vers contains the configuration file version.
	Vers vers.Config `yaml:",inline"`

	// Comments contains the YAML head comments of the loaded file,
	// so they may be preserved when Config is marshaled again.
	Comments *comment.Tree `yaml:"-"`
}

// Database contains the database related configuration settings.
// The Path is used by the sqlite driver, while the Host, Port, Name,
// Role, and PassDir are used by the postgres driver.
type Database struct {
	Driver string // postgres or sqlite

	Path string `yaml:",omitempty"` // SQLite database file path

	Host    string `yaml:",omitempty"` // DBMS server domain name or IP
	Port    int    `yaml:",omitempty"` // DBMS server port number
	Name    string `yaml:",omitempty"` // database name
	Role    string `yaml:",omitempty"` // login role name
	PassDir string `yaml:"pass-dir,omitempty"` // dir of the .pgpass file

	ConnectTimeout *settings.Duration `yaml:"connect-timeout,omitempty"`
}

// Pool is a connections pool which must be closed after use.
type Pool interface {
	repo.Pool
	Close() error
}

// Dialect returns the SQL dialect of the database driver.
func (d Database) Dialect() (*syntax.Dialect, error) {
	switch d.Driver {
	case DriverPostgres:
		return syntax.Postgres(), nil
	case DriverSQLite:
		return syntax.SQLite(), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", d.Driver)
	}
}

// DatabaseContext describes the target database for the units of work.
// Its Name never contains a password.
func (d Database) DatabaseContext() (*repo.DatabaseContext, error) {
	dialect, err := d.Dialect()
	if err != nil {
		return nil, err
	}
	name := d.Path
	if d.Driver == DriverPostgres {
		name = fmt.Sprintf(
			"%s@%s/%s",
			d.Role, net.JoinHostPort(d.Host, strconv.Itoa(d.Port)), d.Name,
		)
	}
	return &repo.DatabaseContext{Name: name, Dialect: dialect}, nil
}

// ConnectionPool creates a database connection pool for the configured
// driver. Connecting is abandoned after the ConnectTimeout duration.
func (d Database) ConnectionPool(ctx context.Context) (Pool, error) {
	timeout := DefaultConnectTimeout
	if d.ConnectTimeout != nil {
		timeout = *d.ConnectTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout.Std())
	defer cancel()
	switch d.Driver {
	case DriverSQLite:
		p, err := sqlite.NewPool(ctx, d.Path)
		if err != nil {
			return nil, err
		}
		return p, nil
	case DriverPostgres:
		path := filepath.Join(d.PassDir, ".pgpass")
		u, err := d.ConnectionURL(path)
		if err != nil {
			return nil, fmt.Errorf("using %q pass-file: %w", path, err)
		}
		p, err := postgres.NewPool(ctx, u)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", d.Driver)
	}
}

// ConnectionURL finds the password of the configured role in the path
// pass-file and returns the PostgreSQL connection URL.
// The pass-file lines must have the host:port:database:role:password
// format (similar to the .pgpass file of the libpq) where empty lines
// and lines which start with a # are ignored.
func (d Database) ConnectionURL(path string) (string, error) {
	passLines, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading pass-file: %w", err)
	}
	prfx := fmt.Sprintf("%s:%d:%s:%s:", d.Host, d.Port, d.Name, d.Role)
	var pass string
	for _, line := range strings.Split(string(passLines), "\n") {
		if line == "" || line[0] == '#' {
			continue
		}
		if p, ok := strings.CutPrefix(line, prfx); ok {
			pass = p
			break
		}
	}
	if pass == "" {
		return "", fmt.Errorf("no matching password line")
	}
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(d.Role, pass),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   d.Name,
	}
	return u.String(), nil
}

// ValidateAndNormalize checks the driver specific settings and fills
// the omitted settings by their defaults.
func (d *Database) ValidateAndNormalize(ctx context.Context) error {
	switch d.Driver {
	case DriverSQLite:
		if d.Path == "" {
			return fmt.Errorf("path is required by the sqlite driver")
		}
	case DriverPostgres:
		switch {
		case d.Host == "":
			return fmt.Errorf("host is required by the postgres driver")
		case d.Name == "":
			return fmt.Errorf("name is required by the postgres driver")
		case d.PassDir == "":
			return fmt.Errorf("pass-dir is required by the postgres driver")
		}
		if d.Port == 0 {
			d.Port = DefaultPort
		}
		if d.Role == "" {
			d.Role = DefaultRole
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", d.Driver)
	}
	settings.Default(&d.ConnectTimeout, DefaultConnectTimeout)
	if err := connectTimeoutBounds.Clamp(d.ConnectTimeout); err != nil {
		log.Warn(
			ctx, "connect timeout is adjusted by boundary values",
			log.Stringer("value", err.Value),
			log.Stringer("adjusted", d.ConnectTimeout),
			log.Err("violation", err),
		)
	}
	return nil
}

// Gin contains the REST API server settings.
type Gin struct {
	Logger   *bool  // Whether to register the request logging middleware
	Recovery *bool  // Whether to register the gin.Recovery() middleware
	Address  string `yaml:",omitempty"` // listening address, like :8080
}

// NewEngine instantiates a Gin engine with the configured middlewares.
// Requests are logged using the l logger.
func (g Gin) NewEngine(l *slog.Logger) *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 2)
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger(l))
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	return gin.New(middlewares...)
}

// Logger contains the logging settings.
type Logger struct {
	Level  string // debug, info, warn, or error
	Format string // text or json
}

// NewLogger creates a slog logger which writes to w.
func (l Logger) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return nil, fmt.Errorf("parsing level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch l.Format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unsupported log format: %q", l.Format)
	}
}

func (l *Logger) validateAndNormalize() error {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
	_, err := l.NewLogger(io.Discard)
	return err
}

// Usecases contains the use cases related settings.
type Usecases struct {
	Migrations Migrations // schema migration use cases settings
}

// Migrations contains the schema migration use cases settings.
type Migrations struct {
	// PlanDialect names the dialect which is used for rendering the
	// migration plans. It may differ from the database dialect, e.g.,
	// sqlserver, in order to review the scripts of another DBMS.
	// The database dialect is used if it is empty.
	PlanDialect string `yaml:"plan-dialect,omitempty"`
}

// NewUseCase instantiates the migration use case for the catalog of
// built-in migrations and the p units of work provider.
func (m Migrations) NewUseCase(
	p *uow.Provider, l *slog.Logger,
) (*migrationuc.UseCase, error) {
	reg, err := catalog.New()
	if err != nil {
		return nil, fmt.Errorf("registering migrations: %w", err)
	}
	opts := make([]migrationuc.Option, 0, 2)
	if l != nil {
		opts = append(opts, migrationuc.WithLogger(l))
	}
	if m.PlanDialect != "" {
		d, err := syntax.Lookup(m.PlanDialect)
		if err != nil {
			return nil, fmt.Errorf("plan dialect: %w", err)
		}
		opts = append(opts, migrationuc.WithPlanDialect(d))
	}
	return migrationuc.New(reg, p, opts...)
}

// NewProvider instantiates a units of work provider which takes its
// connections from the p pool. Connections are shared by the units of
// work which run in one dbscope scope.
func (c *Config) NewProvider(p repo.Pool) (*uow.Provider, error) {
	dbc, err := c.Database.DatabaseContext()
	if err != nil {
		return nil, err
	}
	df, err := dbscope.NewFactory(p)
	if err != nil {
		return nil, err
	}
	return uow.NewProvider(df, repofactory.New(), dbc)
}

// NewMigrationUseCase instantiates the migration use case on the p
// connections pool.
func (c *Config) NewMigrationUseCase(
	p repo.Pool, l *slog.Logger,
) (*migrationuc.UseCase, error) {
	prov, err := c.NewProvider(p)
	if err != nil {
		return nil, fmt.Errorf("creating unit of work provider: %w", err)
	}
	return c.Usecases.Migrations.NewUseCase(prov, l)
}

// Load deserializes the data byte slice into a new instance of Config,
// validates it, and normalizes it by filling the omitted settings.
// Head comments of data are kept in the Comments field.
func Load(ctx context.Context, data []byte) (*Config, error) {
	n := &yaml.Node{}
	if err := yaml.Unmarshal(data, n); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if l := len(n.Content); l != 1 {
		return nil, fmt.Errorf(
			"found %d children nodes, instead of 1 mapping child", l,
		)
	}
	c := &Config{}
	if err := n.Decode(c); err != nil {
		return nil, fmt.Errorf("decoding yaml node: %w", err)
	}
	if err := c.ValidateAndNormalize(ctx); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	cmnts, err := comment.Load(n)
	if err != nil {
		return nil, fmt.Errorf("parsing comments: %w", err)
	}
	c.Comments = cmnts
	return c, nil
}

// ValidateAndNormalize validates c and fills its omitted settings.
func (c *Config) ValidateAndNormalize(ctx context.Context) error {
	if err := c.Vers.Validate(Major, Minor); err != nil {
		return fmt.Errorf(
			"expecting version v%d.%d: %w", Major, Minor, err,
		)
	}
	if err := c.Database.ValidateAndNormalize(ctx); err != nil {
		return fmt.Errorf("validating database settings: %w", err)
	}
	settings.Default(&c.Gin.Logger, true)
	settings.Default(&c.Gin.Recovery, true)
	if c.Gin.Address == "" {
		c.Gin.Address = DefaultAddress
	}
	if err := c.Logger.validateAndNormalize(); err != nil {
		return fmt.Errorf("validating logger settings: %w", err)
	}
	if pd := c.Usecases.Migrations.PlanDialect; pd != "" {
		if _, err := syntax.Lookup(pd); err != nil {
			return fmt.Errorf("validating plan-dialect: %w", err)
		}
	}
	return nil
}

// plain has the fields of Config, but not its MarshalYAML method.
type plain Config

// MarshalYAML encodes c with the latest format version and restores
// the head comments which were loaded with it.
func (c *Config) MarshalYAML() (any, error) {
	p := plain(*c)
	p.Vers.Versions.Config = Version
	n := &yaml.Node{}
	if err := n.Encode(&p); err != nil {
		return nil, fmt.Errorf("encoding Config as YAML: %w", err)
	}
	if err := c.Comments.Apply(n); err != nil {
		return nil, fmt.Errorf("saving YAML nodes comments: %w", err)
	}
	return n, nil
}
