// Package testdb starts a disposable MySQL server in a container. The
// database integration test and the devdb tool share it; production code
// never imports this package.
package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/go-sql-driver/mysql"
)

const (
	image    = "mysql:8.4"
	database = "socialdb_test"
	password = "socialdb-test"
)

// Container wraps a running MySQL server with its resolved endpoint.
type Container struct {
	inner testcontainers.Container

	Host string
	Port string
	DSN  string
}

// Start launches a MySQL container and blocks until the server accepts
// queries, not just TCP connections. MySQL listens briefly during its
// init phase, so the listening-port wait alone is not enough.
func Start(ctx context.Context) (*Container, error) {
	tcpPort, err := nat.NewPort("tcp", "3306")
	if err != nil {
		return nil, fmt.Errorf("failed to create DB port: %w", err)
	}

	inner, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": password,
				"MYSQL_DATABASE":      database,
			},
			WaitingFor: wait.ForListeningPort(tcpPort).WithStartupTimeout(120 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start MySQL container: %w", err)
	}

	host, err := inner.Host(ctx)
	if err != nil {
		_ = inner.Terminate(ctx)
		return nil, err
	}
	mapped, err := inner.MappedPort(ctx, tcpPort)
	if err != nil {
		_ = inner.Terminate(ctx)
		return nil, err
	}

	c := &Container{
		inner: inner,
		Host:  host,
		Port:  mapped.Port(),
	}
	c.DSN = fmt.Sprintf("root:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		password, c.Host, c.Port, database)

	if err := waitForPing(ctx, c.DSN); err != nil {
		_ = inner.Terminate(ctx)
		return nil, fmt.Errorf("MySQL did not become ready: %w", err)
	}

	return c, nil
}

// Database returns the schema name the container was initialized with.
func (c *Container) Database() string { return database }

// Password returns the root password the container was initialized with.
func (c *Container) Password() string { return password }

// Terminate stops and removes the container.
func (c *Container) Terminate(ctx context.Context) error {
	return c.inner.Terminate(ctx)
}

func waitForPing(ctx context.Context, dsn string) error {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	deadline := time.Now().Add(60 * time.Second)
	for {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
}
