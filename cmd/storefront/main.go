// Command storefront is a terminal front end for the boutique
// backend: browse the catalog, manage a cart that survives restarts,
// walk the checkout flow, and pull reports and demand predictions.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/modaboutique/storefront/pkg/api"
	"github.com/modaboutique/storefront/pkg/cart"
	"github.com/modaboutique/storefront/pkg/checkout"
	"github.com/modaboutique/storefront/pkg/credit"
	"github.com/modaboutique/storefront/pkg/global"
	"github.com/modaboutique/storefront/pkg/models"
	"github.com/modaboutique/storefront/pkg/session"
	"github.com/modaboutique/storefront/pkg/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	store := storage.NewFileStore(global.GetEnvOrDefault("STOREFRONT_DATA", "storefront.json"))

	// The session needs the client for login and the client needs the
	// session for tokens; the token source closes over the variable to
	// break the cycle.
	var sess *session.Session
	client := api.NewClient(global.GetAPIBaseURL(), func() string {
		if sess == nil {
			return ""
		}
		return sess.AccessToken()
	})
	sess = session.New(store, client)
	client.SetOnUnauthorized(sess.Logout)

	basket := cart.New(store)
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "login":
		err = runLogin(ctx, sess, os.Args[2:])
	case "logout":
		sess.Logout()
		fmt.Println("Logged out.")
	case "whoami":
		runWhoami(sess)
	case "catalog":
		err = runCatalog(ctx, client, os.Args[2:])
	case "stock":
		err = runStock(ctx, client, os.Args[2:])
	case "cart":
		err = runCart(ctx, client, basket, os.Args[2:])
	case "plans":
		err = runPlans(ctx, client, basket)
	case "checkout":
		err = runCheckout(ctx, client, basket, sess, os.Args[2:])
	case "sales":
		err = runSales(ctx, client, sess, os.Args[2:])
	case "report":
		err = runReport(ctx, client, os.Args[2:])
	case "predict":
		err = runPredict(ctx, client, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: storefront <command>

  login <username> <password>
  logout
  whoami
  catalog [page]
  stock <branchID> <productID>
  cart show | add <productID> | remove <productID> | qty <productID> <n> | clear
  plans
  checkout [--credit <planID>] [--qr] [--card-number N --card-holder H --card-expiry MM/YY --card-cvv C]
  sales <completadas|pendientes|en-proceso|pagando-credito|canceladas> [page]
  report <productos|ventas> <instruction>
  predict [topN]`)
}

func runLogin(ctx context.Context, sess *session.Session, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("login requires <username> <password>")
	}
	identity, err := sess.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as user %d (%s)\n", identity.ID, identity.Role)
	return nil
}

func runWhoami(sess *session.Session) {
	identity := sess.Identity()
	if identity == nil {
		fmt.Println("Not logged in.")
		return
	}
	fmt.Printf("User %d, role %s", identity.ID, identity.Role)
	if identity.BranchID != nil {
		fmt.Printf(", branch %d", *identity.BranchID)
	}
	fmt.Println()
}

func runCatalog(ctx context.Context, client *api.Client, args []string) error {
	page := 0
	if len(args) > 0 {
		page, _ = strconv.Atoi(args[0])
	}
	result, err := client.Catalog(ctx, page)
	if err != nil {
		return err
	}
	for _, p := range result.Content {
		fmt.Printf("%4d  %-30s Bs. %8.2f\n", p.ID, p.Name, p.Price)
	}
	fmt.Printf("page %d of %d\n", result.Number+1, result.TotalPages)
	return nil
}

func runStock(ctx context.Context, client *api.Client, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("stock requires <branchID> <productID>")
	}
	branchID, _ := strconv.Atoi(args[0])
	productID, _ := strconv.Atoi(args[1])
	qty, err := client.Stock(ctx, branchID, productID)
	if err != nil {
		return err
	}
	fmt.Printf("%d unit(s) available\n", qty)
	return nil
}

func runCart(ctx context.Context, client *api.Client, basket *cart.Cart, args []string) error {
	if len(args) == 0 {
		args = []string{"show"}
	}
	switch args[0] {
	case "show":
		for _, it := range basket.Items() {
			fmt.Printf("%4d  %-30s x%-3d Bs. %8.2f\n", it.ID, it.Name, it.Quantity, it.Subtotal())
		}
		fmt.Printf("%d item(s), total Bs. %.2f\n", basket.Count(), basket.Total())
	case "add":
		if len(args) != 2 {
			return fmt.Errorf("cart add requires <productID>")
		}
		id, _ := strconv.Atoi(args[1])
		product, err := findProduct(ctx, client, id)
		if err != nil {
			return err
		}
		basket.Add(*product)
		fmt.Printf("Added %s\n", product.Name)
	case "remove":
		if len(args) != 2 {
			return fmt.Errorf("cart remove requires <productID>")
		}
		id, _ := strconv.Atoi(args[1])
		basket.Remove(id)
	case "qty":
		if len(args) != 3 {
			return fmt.Errorf("cart qty requires <productID> <n>")
		}
		id, _ := strconv.Atoi(args[1])
		qty, _ := strconv.Atoi(args[2])
		basket.SetQuantity(id, qty)
	case "clear":
		basket.Clear()
	default:
		return fmt.Errorf("unknown cart command %q", args[0])
	}
	return nil
}

// findProduct walks catalog pages until the id shows up. Fine for a
// catalog this size; a dedicated lookup endpoint does not exist.
func findProduct(ctx context.Context, client *api.Client, id int) (*models.Product, error) {
	for page := 0; ; page++ {
		result, err := client.Catalog(ctx, page)
		if err != nil {
			return nil, err
		}
		for _, p := range result.Content {
			if p.ID == id {
				return &p, nil
			}
		}
		if page+1 >= result.TotalPages {
			return nil, fmt.Errorf("product %d not found in catalog", id)
		}
	}
}

func runPlans(ctx context.Context, client *api.Client, basket *cart.Cart) error {
	plans, err := client.CreditPlans(ctx)
	if err != nil {
		return err
	}
	for _, p := range plans {
		if !p.Active {
			continue
		}
		fmt.Printf("%3d  %-20s %2d cuotas (%s) %5.2f%% anual", p.ID, p.Name, p.Term, p.Frequency, p.AnnualRate)
		if total := basket.Total(); total > 0 {
			fmt.Printf("  ~Bs. %.2f/cuota", credit.PlanInstallment(total, p))
		}
		fmt.Println()
	}
	return nil
}

func runCheckout(ctx context.Context, client *api.Client, basket *cart.Cart, sess *session.Session, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	planID := fs.Int("credit", 0, "credit plan id (omit for cash)")
	useQR := fs.Bool("qr", false, "pay by QR instead of card")
	cardNumber := fs.String("card-number", "", "card number")
	cardHolder := fs.String("card-holder", "", "card holder name")
	cardExpiry := fs.String("card-expiry", "", "card expiry MM/YY")
	cardCVV := fs.String("card-cvv", "", "card CVV")
	if err := fs.Parse(args); err != nil {
		return err
	}

	flow := checkout.New(basket, sess, client, client)
	if err := flow.LoadPlans(ctx); err != nil {
		log.Printf("Continuing without credit plans: %v", err)
	}

	if *planID != 0 {
		flow.SetPaymentType(models.PaymentTypeCredit)
		flow.SelectPlan(*planID)
	}
	if err := flow.Next(); err != nil {
		return err
	}

	if *useQR {
		flow.SetChannel(checkout.ChannelQR)
	} else {
		flow.SetChannel(checkout.ChannelCard)
		flow.SetCard(checkout.Card{
			Number: *cardNumber,
			Holder: *cardHolder,
			Expiry: *cardExpiry,
			CVV:    *cardCVV,
		})
	}
	if err := flow.Next(); err != nil {
		return err
	}

	if err := flow.Submit(ctx); err != nil {
		return fmt.Errorf("%s", flow.ErrorMessage())
	}
	fmt.Println("Payment successful. Cart cleared.")
	return nil
}

func runSales(ctx context.Context, client *api.Client, sess *session.Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("sales requires a status")
	}
	page := 0
	if len(args) > 1 {
		page, _ = strconv.Atoi(args[1])
	}
	var branchID *int
	if identity := sess.Identity(); identity != nil {
		branchID = identity.BranchID
	}

	var result *models.Page[models.Sale]
	var err error
	switch args[0] {
	case "completadas":
		result, err = client.CompletedSales(ctx, page, branchID)
	case "pendientes":
		result, err = client.PendingSales(ctx, page, branchID)
	case "en-proceso":
		result, err = client.InProcessSales(ctx, page, branchID)
	case "pagando-credito":
		result, err = client.PayingCreditSales(ctx, page, branchID)
	case "canceladas":
		result, err = client.CanceledSales(ctx, page, branchID)
	default:
		return fmt.Errorf("unknown sale status %q", args[0])
	}
	if err != nil {
		return err
	}
	for _, s := range result.Content {
		fmt.Printf("%4d  %s %s  %-12s %-8s Bs. %8.2f  %s\n",
			s.ID, s.Date, s.Time, s.Status, s.PaymentType, s.Total, s.CustomerName)
	}
	fmt.Printf("page %d of %d\n", result.Number+1, result.TotalPages)
	return nil
}

func runReport(ctx context.Context, client *api.Client, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("report requires <productos|ventas> <instruction>")
	}
	var report *api.Report
	var err error
	switch args[0] {
	case "productos":
		report, err = client.ProductReport(ctx, args[1])
	case "ventas":
		report, err = client.SalesReport(ctx, args[1])
	default:
		return fmt.Errorf("unknown report kind %q", args[0])
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(report.Filename, report.Data, 0o644); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	fmt.Printf("Saved %s (%d bytes)\n", report.Filename, len(report.Data))
	return nil
}

func runPredict(ctx context.Context, client *api.Client, args []string) error {
	query := api.PredictionQuery{}
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			query.TopN = &n
		}
	}
	result, err := client.Prediction(ctx, query)
	if err != nil {
		return err
	}
	fmt.Println(result.Summary.Message)
	fmt.Printf("%d product(s), %d unit(s), Bs. %.2f predicted\n",
		result.Summary.TotalProducts, result.Summary.TotalUnits, result.Summary.TotalRevenue)
	for _, r := range result.Results {
		fmt.Printf("%2d. %-30s %4d unit(s)  conf %.2f\n", r.Ranking, r.ProductName, r.PredictedQty, r.Confidence)
	}
	return nil
}
