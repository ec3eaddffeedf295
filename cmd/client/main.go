package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/MKhiriev/go-gift-catalog/internal/adapter"
	"github.com/MKhiriev/go-gift-catalog/internal/config"
	"github.com/MKhiriev/go-gift-catalog/internal/logger"
	"github.com/MKhiriev/go-gift-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: client <command> [arguments]

commands:
  register <email> <password>
  login <email> <password>
  list
  get <id>
  create -name <name> -price <price> -image <url>
  update <id> -name <name> -price <price> -image <url>
  delete <id>
  version
`

var errUsage = errors.New("invalid arguments")

func main() {
	log := logger.NewClientLogger("gift-catalog-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewHTTPProductAPI(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = run(ctx, api, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

// run executes a single command against api and prints the result as JSON.
func run(ctx context.Context, api adapter.ProductAPI, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	command, args := args[0], args[1:]
	switch command {
	case "register", "login":
		if len(args) != 2 {
			return errUsage
		}
		credentials := models.Credentials{Email: args[0], Password: args[1]}

		var (
			token string
			err   error
		)
		if command == "register" {
			token, err = api.Register(ctx, credentials)
		} else {
			token, err = api.Login(ctx, credentials)
		}
		if err != nil {
			return err
		}
		return printJSON(out, models.TokenResponse{Token: token})

	case "list":
		products, err := api.ListProducts(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, products)

	case "get":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		product, err := api.GetProduct(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(out, product)

	case "create":
		dto, err := parseProduct(command, args)
		if err != nil {
			return err
		}
		product, err := api.CreateProduct(ctx, dto)
		if err != nil {
			return err
		}
		return printJSON(out, product)

	case "update":
		id, err := parseID(args[:min(len(args), 1)])
		if err != nil {
			return err
		}
		dto, err := parseProduct(command, args[1:])
		if err != nil {
			return err
		}
		product, err := api.UpdateProduct(ctx, id, dto)
		if err != nil {
			return err
		}
		return printJSON(out, product)

	case "delete":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		return api.DeleteProduct(ctx, id)

	case "version":
		_, err := fmt.Fprintln(out, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return err
	}

	return fmt.Errorf("%w: unknown command %q", errUsage, command)
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: product id must be an integer", errUsage)
	}
	return id, nil
}

func parseProduct(command string, args []string) (models.ProductDTO, error) {
	var dto models.ProductDTO

	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&dto.Name, "name", "", "product name")
	fs.Int64Var(&dto.Price, "price", 0, "product price")
	fs.StringVar(&dto.ImageURL, "image", "", "product image URL")

	if err := fs.Parse(args); err != nil {
		return dto, fmt.Errorf("%w: %w", errUsage, err)
	}
	return dto, nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
