package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"carauction/internal/models"
	"carauction/internal/repositories/memory"
	"carauction/internal/seed"
	"carauction/internal/services"
	"carauction/internal/validators"
	"carauction/pkg/logger"

	"github.com/spf13/pflag"
)

// Interactive console against an in-process auction service. Useful for
// poking at the domain without standing up the HTTP server.
func main() {
	flags := pflag.NewFlagSet("carauction-console", pflag.ContinueOnError)
	seedData := flags.Bool("seed", true, "load demo vehicles and auctions at startup")
	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse flags: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewNopLogger()

	vehicleRepo := memory.NewVehicleRepository()
	auctionRepo := memory.NewAuctionRepository()
	factory := services.NewVehicleFactory()
	auctionService := services.NewAuctionService(vehicleRepo, auctionRepo, factory, log)

	ctx := context.Background()
	if *seedData {
		if err := seed.Seed(ctx, auctionService, log); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed data: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Loaded demo vehicles with active auctions.")
	}

	fmt.Println("Car Auction console. Type 'help' for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		args := strings.Fields(line)
		command := strings.ToLower(args[0])

		switch command {
		case "help":
			printHelp()
		case "exit", "quit":
			fmt.Println("Bye.")
			return
		case "types":
			runTypes(auctionService)
		case "add-vehicle":
			runAddVehicle(ctx, auctionService, args[1:])
		case "search":
			runSearch(ctx, auctionService, args[1:])
		case "vehicle":
			runVehicle(ctx, auctionService, args[1:])
		case "start-auction":
			runStartAuction(ctx, auctionService, args[1:])
		case "bid":
			runBid(ctx, auctionService, args[1:])
		case "close":
			runClose(ctx, auctionService, args[1:])
		case "auctions":
			runAuctions(ctx, auctionService)
		case "history":
			runHistory(ctx, auctionService, args[1:])
		case "stats":
			runStats(ctx, auctionService)
		default:
			fmt.Printf("Unknown command %q. Type 'help' for commands.\n", command)
		}
	}
}

func printHelp() {
	fmt.Println(`Commands:
  types                                                list supported vehicle types
  add-vehicle <id> <vin> <type> <manufacturer> <model> <year> <startingBid> <extra>
                                                       add a vehicle; <extra> is doors, seats
                                                       or load capacity depending on type
  search [type=..] [manufacturer=..] [model=..] [year=..] [min_year=..] [max_year=..]
                                                       search the inventory
  vehicle <id>                                         show one vehicle
  start-auction <vehicleId>                            open an auction
  bid <vehicleId> <bidder> <amount> [currency]         place a bid
  close <vehicleId>                                    close the active auction
  auctions                                             list active auctions
  history <vehicleId>                                  list all auctions for a vehicle
  stats                                                show inventory and auction counts
  exit                                                 quit`)
}

func runTypes(auctionService services.AuctionService) {
	for _, vehicleType := range auctionService.GetSupportedVehicleTypes() {
		parameters, err := auctionService.GetRequiredParametersForType(vehicleType)
		if err != nil {
			fmt.Printf("  %s\n", vehicleType)
			continue
		}
		var names []string
		for name := range parameters {
			names = append(names, name)
		}
		fmt.Printf("  %-10s requires: %s\n", vehicleType, strings.Join(names, ", "))
	}
}

func runAddVehicle(ctx context.Context, auctionService services.AuctionService, args []string) {
	if len(args) != 8 {
		fmt.Println("Usage: add-vehicle <id> <vin> <type> <manufacturer> <model> <year> <startingBid> <extra>")
		return
	}

	year, err := strconv.Atoi(args[5])
	if err != nil {
		fmt.Printf("Invalid year %q\n", args[5])
		return
	}
	startingBid, err := strconv.ParseFloat(args[6], 64)
	if err != nil {
		fmt.Printf("Invalid starting bid %q\n", args[6])
		return
	}
	extra, err := strconv.ParseFloat(args[7], 64)
	if err != nil {
		fmt.Printf("Invalid attribute value %q\n", args[7])
		return
	}

	attributes := map[string]interface{}{}
	switch strings.ToLower(args[2]) {
	case "sedan", "hatchback":
		attributes[models.AttributeNumberOfDoors] = extra
	case "suv":
		attributes[models.AttributeNumberOfSeats] = extra
	case "truck":
		attributes[models.AttributeLoadCapacity] = extra
	default:
		attributes["Extra"] = extra
	}

	request := &models.CreateVehicleRequest{
		ID:                   args[0],
		VIN:                  args[1],
		Type:                 args[2],
		Manufacturer:         args[3],
		Model:                args[4],
		Year:                 year,
		StartingBidAmount:    startingBid,
		AdditionalAttributes: attributes,
	}
	if verrs := validators.ValidateStruct(request); len(verrs) > 0 {
		for _, verr := range verrs {
			fmt.Printf("Invalid %s: %s\n", verr.Field, verr.Message)
		}
		return
	}

	vehicle, err := auctionService.AddVehicle(ctx, request)
	if err != nil {
		printErr(err)
		return
	}
	fmt.Printf("Added %s %s %s (%d), starting bid %.2f %s\n",
		vehicle.Type, vehicle.Manufacturer, vehicle.Model, vehicle.Year,
		vehicle.StartingBidAmount, vehicle.StartingBidCurrency)
}

func runSearch(ctx context.Context, auctionService services.AuctionService, args []string) {
	request := &models.VehicleSearchRequest{Take: 50}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			fmt.Printf("Expected key=value, got %q\n", arg)
			return
		}
		switch strings.ToLower(key) {
		case "type":
			request.Type = value
		case "manufacturer":
			request.Manufacturer = value
		case "model":
			request.Model = value
		case "year", "min_year", "max_year":
			year, err := strconv.Atoi(value)
			if err != nil {
				fmt.Printf("Invalid year %q\n", value)
				return
			}
			switch strings.ToLower(key) {
			case "year":
				request.Year = &year
			case "min_year":
				request.MinYear = &year
			case "max_year":
				request.MaxYear = &year
			}
		default:
			fmt.Printf("Unknown filter %q\n", key)
			return
		}
	}

	result, err := auctionService.SearchVehicles(ctx, request)
	if err != nil {
		printErr(err)
		return
	}
	fmt.Printf("%s: %d match(es)\n", result.SearchDescription, result.TotalCount)
	for _, vehicle := range result.Vehicles {
		fmt.Printf("  [%s] %s %s %s (%d), starting bid %.2f %s\n",
			vehicle.ID, vehicle.Type, vehicle.Manufacturer, vehicle.Model,
			vehicle.Year, vehicle.StartingBidAmount, vehicle.StartingBidCurrency)
	}
}

func runVehicle(ctx context.Context, auctionService services.AuctionService, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: vehicle <id>")
		return
	}
	vehicle, err := auctionService.GetVehicleByID(ctx, args[0])
	if err != nil {
		printErr(err)
		return
	}
	fmt.Printf("[%s] %s %s %s (%d) VIN %s, starting bid %.2f %s\n",
		vehicle.ID, vehicle.Type, vehicle.Manufacturer, vehicle.Model,
		vehicle.Year, vehicle.VIN, vehicle.StartingBidAmount, vehicle.StartingBidCurrency)
	for name, value := range vehicle.AdditionalAttributes {
		fmt.Printf("  %s: %v\n", name, value)
	}
}

func runStartAuction(ctx context.Context, auctionService services.AuctionService, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: start-auction <vehicleId>")
		return
	}
	auction, err := auctionService.StartAuction(ctx, &models.StartAuctionRequest{VehicleID: args[0]})
	if err != nil {
		printErr(err)
		return
	}
	fmt.Printf("Auction started for vehicle %s at %.2f %s\n",
		auction.VehicleID, auction.CurrentHighestBidAmount, auction.CurrentHighestBidCurrency)
}

func runBid(ctx context.Context, auctionService services.AuctionService, args []string) {
	if len(args) < 3 || len(args) > 4 {
		fmt.Println("Usage: bid <vehicleId> <bidder> <amount> [currency]")
		return
	}
	amount, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		fmt.Printf("Invalid amount %q\n", args[2])
		return
	}
	request := &models.PlaceBidRequest{VehicleID: args[0], Bidder: args[1], Amount: amount}
	if len(args) == 4 {
		request.Currency = args[3]
	}

	auction, err := auctionService.PlaceBid(ctx, request)
	if err != nil {
		printErr(err)
		return
	}
	fmt.Printf("Bid accepted. Highest bid is now %.2f %s by %s (%d bid(s) total)\n",
		auction.CurrentHighestBidAmount, auction.CurrentHighestBidCurrency,
		auction.CurrentHighestBidder, auction.TotalBids)
}

func runClose(ctx context.Context, auctionService services.AuctionService, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: close <vehicleId>")
		return
	}
	summary, err := auctionService.CloseAuction(ctx, &models.CloseAuctionRequest{VehicleID: args[0]})
	if err != nil {
		printErr(err)
		return
	}
	winner := summary.CurrentHighestBidder
	if winner == "" {
		winner = "no bidders"
	}
	fmt.Printf("Auction closed for vehicle %s. Winning bid %.2f %s (%s), %d bid(s)\n",
		summary.VehicleID, summary.CurrentHighestBidAmount,
		summary.CurrentHighestBidCurrency, winner, summary.TotalBids)
}

func runAuctions(ctx context.Context, auctionService services.AuctionService) {
	auctions, err := auctionService.GetAllActiveAuctions(ctx)
	if err != nil {
		printErr(err)
		return
	}
	if len(auctions) == 0 {
		fmt.Println("No active auctions.")
		return
	}
	for _, auction := range auctions {
		printAuctionLine(auction)
	}
}

func runHistory(ctx context.Context, auctionService services.AuctionService, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: history <vehicleId>")
		return
	}
	auctions, err := auctionService.GetAuctionHistory(ctx, args[0])
	if err != nil {
		printErr(err)
		return
	}
	if len(auctions) == 0 {
		fmt.Println("No auctions for that vehicle.")
		return
	}
	for _, auction := range auctions {
		printAuctionLine(auction)
	}
}

func runStats(ctx context.Context, auctionService services.AuctionService) {
	stats, err := auctionService.GetStats(ctx)
	if err != nil {
		printErr(err)
		return
	}
	fmt.Printf("Vehicles: %d, active auctions: %d\n", stats.VehicleCount, stats.ActiveAuctionCount)
	for vehicleType, count := range stats.VehiclesByType {
		fmt.Printf("  %s: %d\n", vehicleType, count)
	}
}

func printAuctionLine(auction *models.AuctionResponse) {
	state := "active"
	if !auction.IsActive {
		state = "closed"
	}
	bidder := auction.CurrentHighestBidder
	if bidder == "" {
		bidder = "-"
	}
	fmt.Printf("  vehicle %s [%s] started %s, highest %.2f %s by %s, %d bid(s)\n",
		auction.VehicleID, state, auction.StartTime.Format("2006-01-02 15:04:05"),
		auction.CurrentHighestBidAmount, auction.CurrentHighestBidCurrency,
		bidder, auction.TotalBids)
}

func printErr(err error) {
	if domainErr, ok := models.AsDomainError(err); ok {
		fmt.Printf("Error [%s]: %s\n", domainErr.Code, domainErr.Message)
		return
	}
	fmt.Printf("Error: %v\n", err)
}
