package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/solucionesabiertas/mantenimiento/config"
	sqliteadapter "github.com/solucionesabiertas/mantenimiento/internal/adapters/db/sqlite"
	httpadapter "github.com/solucionesabiertas/mantenimiento/internal/adapters/http"
	rpcadapter "github.com/solucionesabiertas/mantenimiento/internal/adapters/rpcjson"
	"github.com/solucionesabiertas/mantenimiento/internal/application"
)

func main() {
	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}

	root := &cli.Command{
		Name:  "mantenimiento",
		Usage: "Equipment maintenance tracking server and CLI",
		Commands: []*cli.Command{
			serverCommand(),
			usersCommand(),
			equipmentCommand(),
			ordersCommand(),
			detailsCommand(),
			configCommand(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runServer(ctx, config.Default())
		},
	}

	if err := root.Run(context.Background(), args); err != nil {
		log.Fatal(err)
	}
}

func serverCommand() *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "Run the maintenance server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to yaml config file"},
			&cli.StringFlag{Name: "addr", Value: ":8080", Usage: "HTTP listen address"},
			&cli.StringFlag{Name: "rpc-socket", Value: "/tmp/mantenimiento.sock", Usage: "JSON-RPC unix socket path"},
			&cli.StringFlag{Name: "db-path", Value: "mantenimiento.db", Usage: "SQLite database path"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg := config.Default()
			if c.String("config") != "" {
				loaded, err := config.Load(c.String("config"))
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if c.IsSet("addr") {
				cfg.Server.Addr = c.String("addr")
			}
			if c.IsSet("rpc-socket") {
				cfg.Server.RPCSocket = c.String("rpc-socket")
			}
			if c.IsSet("db-path") {
				cfg.Database.Path = c.String("db-path")
			}
			return runServer(ctx, cfg)
		},
	}
}

func runServer(ctx context.Context, cfg *config.Config) error {
	db, err := sqliteadapter.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	if err := sqliteadapter.RunMigrations(ctx, db); err != nil {
		return err
	}

	repo := sqliteadapter.NewMaintenanceRepository(db)
	service := application.NewMaintenanceService(repo)

	router := httpadapter.NewRouter(service)
	srv := &http.Server{Addr: cfg.Server.Addr, Handler: router, ReadHeaderTimeout: 5 * time.Second}
	rpcSrv, err := rpcadapter.Start(cfg.Server.RPCSocket, service)
	if err != nil {
		return err
	}

	defer func() {
		_ = rpcSrv.Close()
	}()
	log.Printf("json-rpc listening on unix://%s", cfg.Server.RPCSocket)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("server listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func usersCommand() *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "User commands",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "role", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out userResponse
					if err := doUsersCreate(ctx, cfg, c.String("name"), c.String("role"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printUsers([]userResponse{out})
					return nil
				},
			},
			{
				Name:  "get",
				Usage: "Get user by id",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out userResponse
					if err := doUsersGet(ctx, cfg, c.Int64("id"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printUsers([]userResponse{out})
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "List users",
				Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out []userResponse
					if err := doUsersList(ctx, cfg, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printUsers(out)
					return nil
				},
			},
			{
				Name:  "delete",
				Usage: "Delete user and cascade its orders",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out struct {
						ID int64 `json:"id"`
					}
					if err := doUsersDelete(ctx, cfg, c.Int64("id"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					fmt.Printf("deleted user %d\n", out.ID)
					return nil
				},
			},
		},
	}
}

func equipmentCommand() *cli.Command {
	return &cli.Command{
		Name:  "equipment",
		Usage: "Equipment commands",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create equipment",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "serial", Required: true, Usage: "serial number"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out equipmentResponse
					if err := doEquipmentCreate(ctx, cfg, c.String("name"), c.String("serial"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printEquipment([]equipmentResponse{out})
					return nil
				},
			},
			{
				Name:  "get",
				Usage: "Get equipment by id",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out equipmentResponse
					if err := doEquipmentGet(ctx, cfg, c.Int64("id"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printEquipment([]equipmentResponse{out})
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "List equipment",
				Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out []equipmentResponse
					if err := doEquipmentList(ctx, cfg, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printEquipment(out)
					return nil
				},
			},
		},
	}
}

func ordersCommand() *cli.Command {
	return &cli.Command{
		Name:  "orders",
		Usage: "Maintenance order commands",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Open a maintenance order",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "user-id", Required: true},
					&cli.Int64Flag{Name: "equipment-id", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out orderResponse
					if err := doOrdersCreate(ctx, cfg, c.Int64("user-id"), c.Int64("equipment-id"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printKV([][2]string{
						{"id", int64ToString(out.ID)},
						{"user_id", int64ToString(out.UserID)},
						{"equipment_id", int64ToString(out.EquipmentID)},
						{"state", out.State},
						{"date_created", out.DateCreated},
					})
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "List maintenance orders with user and equipment names",
				Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out []orderSummaryResponse
					if err := doOrdersList(ctx, cfg, &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printOrders(out)
					return nil
				},
			},
		},
	}
}

func detailsCommand() *cli.Command {
	return &cli.Command{
		Name:  "details",
		Usage: "Maintenance detail commands",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Attach a detail entry to an order",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "order-id", Required: true},
					&cli.StringFlag{Name: "description", Required: true},
					&cli.StringFlag{Name: "date", Required: true, Usage: "format: 2006-01-02 15:04:05"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out detailResponse
					if err := doDetailsCreate(ctx, cfg, c.Int64("order-id"), c.String("description"), c.String("date"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printDetails([]detailResponse{out})
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "List detail entries of an order",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "order-id", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					var out []detailResponse
					if err := doDetailsList(ctx, cfg, c.Int64("order-id"), &out); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(out)
					}
					printDetails(out)
					return nil
				},
			},
		},
	}
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "CLI transport configuration",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show the saved CLI configuration",
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					printKV([][2]string{
						{"transport", cfg.Transport},
						{"server", cfg.Server},
						{"socket", cfg.Socket},
					})
					return nil
				},
			},
			{
				Name:  "use",
				Usage: "Save CLI transport settings",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "transport", Usage: "uds or http"},
					&cli.StringFlag{Name: "server", Usage: "HTTP server base URL"},
					&cli.StringFlag{Name: "socket", Usage: "JSON-RPC unix socket path"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					if c.IsSet("transport") {
						cfg.Transport = c.String("transport")
					}
					if c.IsSet("server") {
						cfg.Server = c.String("server")
					}
					if c.IsSet("socket") {
						cfg.Socket = c.String("socket")
					}
					if err := saveConfig(cfg); err != nil {
						return err
					}
					fmt.Println("config saved")
					return nil
				},
			},
		},
	}
}
