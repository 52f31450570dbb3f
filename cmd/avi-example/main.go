// Command avi-example runs the Santa Barbara sample lookup through both the
// REST and the SOAP invoker and prints what comes back.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/DanielPopoola/avi-gateway/internal/application"
	"github.com/DanielPopoola/avi-gateway/internal/config"
	"github.com/DanielPopoola/avi-gateway/internal/domain"
	"github.com/DanielPopoola/avi-gateway/internal/infrastructure/avi"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := config.LoggerConfig{Level: os.Getenv("GATEWAY_LOGGER__LEVEL")}.NewLogger("dev")

	req := domain.LookupRequest{
		Address1:           "27 E Cota St",
		Locality:           "Santa Barbara",
		AdministrativeArea: "CA",
		PostalCode:         "93101",
		Country:            "USA",
		LicenseKey:         os.Getenv("GATEWAY_AVI__LICENSE_KEY"),
		IsLive:             os.Getenv("GATEWAY_AVI__IS_LIVE") != "false",
		Timeout:            domain.DefaultTimeout,
	}

	client := &http.Client{}
	invokers := []application.AddressLookup{
		avi.NewFallbackInvoker(avi.NewRESTTransport(client), avi.EndpointsFor(domain.ProtocolREST), logger),
		avi.NewFallbackInvoker(avi.NewSOAPTransport(client), avi.EndpointsFor(domain.ProtocolSOAP), logger),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	return lookupAll(ctx, invokers, req, logger)
}

// lookupAll runs every invoker and returns the process exit code: 1 when
// any of them failed.
func lookupAll(ctx context.Context, invokers []application.AddressLookup, req domain.LookupRequest, logger *slog.Logger) int {
	exit := 0
	for _, invoker := range invokers {
		if err := lookup(ctx, invoker, req); err != nil {
			logger.Error("lookup failed", "protocol", invoker.Protocol(), "error", err)
			exit = 1
		}
	}
	return exit
}

func lookup(ctx context.Context, invoker application.AddressLookup, req domain.LookupRequest) error {
	fmt.Printf("\n* Address Insight %s *\n\n", invoker.Protocol())
	fmt.Println("* Input *")
	fmt.Println(req.WithDefaults())

	outcome, err := invoker.Invoke(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("\n* Endpoint * %s (attempts: %d", outcome.Endpoint, outcome.Attempts)
	if outcome.FellBack() {
		fmt.Printf(", fallback: %s", outcome.FallbackReason)
	}
	fmt.Println(")")

	if info, ok := outcome.Response.AddressInfo(); ok {
		fmt.Println("\n* Address Info *")
		fmt.Printf("Status: %s\nResolution Level: %s\n", info.Status, info.ResolutionLevel)
		for i, line := range info.Lines() {
			if line != "" {
				fmt.Printf("Address%d: %s\n", i+1, line)
			}
		}
		fmt.Printf("Locality: %s\nAdministrative Area: %s\nPostal Code: %s\nCountry: %s (%s/%s)\n",
			info.Locality, info.AdministrativeArea, info.PostalCode, info.Country, info.CountryISO2, info.CountryISO3)

		if len(info.InformationComponents) > 0 {
			fmt.Println("\n* Information Components *")
			for _, c := range info.InformationComponents {
				fmt.Printf("%s: %s\n", c.Name, c.Value)
			}
		}
	}

	if info, ok := outcome.Response.ErrorInfo(); ok {
		fmt.Println("\n* Error *")
		fmt.Printf("Type: %s\nType Code: %s\nDesc: %s\nDesc Code: %s\n", info.Type, info.TypeCode, info.Desc, info.DescCode)
	}

	return nil
}
