package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/console/api"
	"github.com/jhoicas/supermercado-api/internal/console/billing"
	"github.com/jhoicas/supermercado-api/internal/view"
)

// App es el REPL de la consola de administración. Lee comandos de in,
// consulta el backend a través del cliente tipado y renderiza tablas en out.
type App struct {
	client  api.Client
	session *billing.Session
	pages   *Tabs[Page]
	credit  *Tabs[CreditTab]
	pager   *Paginator
	out     io.Writer
}

// NewApp construye la aplicación.
func NewApp(client api.Client, taxRate decimal.Decimal, pageSize int, out io.Writer) *App {
	return &App{
		client:  client,
		session: billing.NewSession(client, taxRate),
		pages:   NewTabs(PageDashboard),
		credit:  NewTabs(CreditTabFacturas),
		pager:   NewPaginator(pageSize),
		out:     out,
	}
}

// Run ejecuta el bucle de comandos hasta EOF o el comando "salir".
func (a *App) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(a.out, "Consola de administración. Escriba \"ayuda\" para ver los comandos.")
	a.renderPage(ctx)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(a.out, "[%s] > ", a.pages.Active())
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "salir" {
			return nil
		}
		if err := a.Execute(ctx, line); err != nil {
			fmt.Fprintf(a.out, "Error: %s\n", err)
		}
	}
}

// Execute interpreta y ejecuta un comando.
func (a *App) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "ayuda":
		a.printHelp()
		return nil
	case "ir":
		if len(args) != 1 {
			return errors.New("uso: ir <dashboard|inventarios|contado|facturacion|creditos>")
		}
		page, err := ParsePage(args[0])
		if err != nil {
			return err
		}
		a.pages.Select(page)
		a.pager.SetTotal(0)
		a.renderPage(ctx)
		return nil
	case "listar":
		a.renderPage(ctx)
		return nil
	case "pagina":
		return a.cmdPagina(ctx, args)
	case "pestana":
		return a.cmdPestana(ctx, args)
	case "alta":
		return a.cmdAlta(ctx, args)
	case "eliminar":
		return a.cmdEliminar(ctx, args)
	case "stock":
		return a.cmdStock(ctx, args)
	case "agregar":
		return a.cmdAgregar(ctx, args)
	case "cantidad":
		return a.cmdCantidad(args)
	case "quitar":
		return a.cmdQuitar(args)
	case "vaciar":
		a.session.Cart().Clear()
		a.renderCart()
		return nil
	case "cobrar":
		return a.cmdCobrar(ctx)
	case "facturar":
		return a.cmdFacturar(ctx, args)
	case "abonar":
		return a.cmdAbonar(ctx, args)
	case "nota":
		return a.cmdNota(ctx, args)
	}
	return fmt.Errorf("comando desconocido: %q (escriba \"ayuda\")", cmd)
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `Comandos:
  ir <pantalla>                  cambia de pantalla
  listar                         vuelve a cargar la pantalla actual
  pagina <siguiente|anterior>    navega el inventario
  pestana <facturas|abonos|notas> pestañas de créditos
  alta <sku> <precio> <stock> <nombre...>   alta de producto
  stock <id> <n>                 ajusta el stock de un producto
  eliminar <id>                  baja de producto
  agregar <sku>                  escanea un SKU al carrito
  cantidad <id> <n>              fija la cantidad de una línea
  quitar <id>                    quita una línea del carrito
  vaciar                         vacía el carrito
  cobrar                         finaliza la venta al contado
  facturar <cliente...>          emite la factura de venta
  abonar <factura> <monto> <metodo>   registra un abono
  nota <factura> <monto> <motivo...>  emite una nota de crédito
  salir
`)
}

// ── Renderizado por pantalla ─────────────────────────────────────────────────

func (a *App) renderPage(ctx context.Context) {
	var err error
	switch a.pages.Active() {
	case PageDashboard:
		err = a.renderDashboard(ctx)
	case PageInventarios:
		err = a.renderInventory(ctx)
	case PageContado, PageFacturacion:
		a.renderCart()
	case PageCreditos:
		err = a.renderCredit(ctx)
	}
	if err != nil {
		// El fallo de carga degrada a un error de pantalla, no tumba el REPL.
		fmt.Fprintf(a.out, "Error: %s\n", err)
	}
}

func (a *App) renderDashboard(ctx context.Context) error {
	summary, err := a.client.FetchDashboard(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Ingresos de hoy: $%s\n", summary.TodayRevenue.StringFixed(2))
	fmt.Fprintf(a.out, "Facturas emitidas: %d\n", summary.InvoicesIssued)
	fmt.Fprintf(a.out, "Productos agotados: %d\n", summary.OutOfStock)
	fmt.Fprintf(a.out, "Monto pendiente: $%s\n", summary.PendingAmount.StringFixed(2))

	fmt.Fprintln(a.out, "\nAlertas de inventario bajo:")
	low := view.NewTable([]view.Column[dto.LowStockDTO]{
		{Title: "SKU", Resolve: func(r dto.LowStockDTO) string { return r.SKU }},
		{Title: "Producto", Resolve: func(r dto.LowStockDTO) string { return r.Name }},
		{Title: "Stock", Resolve: func(r dto.LowStockDTO) string { return strconv.Itoa(r.Stock) }},
	}).WithEmptyMessage("Sin alertas de inventario")
	low.SetRows(summary.LowStock)
	return low.Render(a.out)
}

func (a *App) renderInventory(ctx context.Context) error {
	list, err := a.client.FetchProducts(ctx)
	if err != nil {
		return err
	}
	a.pager.SetTotal(len(list.Items))
	start, end := a.pager.Bounds()

	tbl := view.NewTable([]view.Column[dto.ProductResponse]{
		{Title: "ID", Resolve: func(r dto.ProductResponse) string { return r.ID }},
		{Title: "SKU", Resolve: func(r dto.ProductResponse) string { return r.SKU }},
		{Title: "Producto", Resolve: func(r dto.ProductResponse) string { return r.Name }},
		{Title: "Categoría", Resolve: func(r dto.ProductResponse) string { return r.Category }},
		{Title: "Stock", Resolve: func(r dto.ProductResponse) string { return strconv.Itoa(r.Stock) }},
		{Title: "Precio", Resolve: func(r dto.ProductResponse) string { return "$" + r.Price.StringFixed(2) }},
		{Title: "Proveedor", Resolve: func(r dto.ProductResponse) string { return r.Supplier }},
	}).WithEmptyMessage("No hay productos en el inventario")
	tbl.SetRows(list.Items[start:end])
	if err := tbl.Render(a.out); err != nil {
		return err
	}
	if tp := a.pager.TotalPages(); tp > 1 {
		fmt.Fprintf(a.out, "Página %d de %d\n", a.pager.Page(), tp)
	}
	return nil
}

func (a *App) renderCart() {
	items := a.session.Cart().Items()
	tbl := view.NewTable([]view.Column[int]{
		{Title: "Cant.", Resolve: func(i int) string { return strconv.Itoa(items[i].Quantity) }},
		{Title: "Producto", Resolve: func(i int) string { return items[i].Product.Name }},
		{Title: "P. Unitario", Resolve: func(i int) string { return "$" + items[i].Product.Price.StringFixed(2) }},
		{Title: "Subtotal", Resolve: func(i int) string { return "$" + items[i].Subtotal().StringFixed(2) }},
	}).WithEmptyMessage("El carrito está vacío")
	idx := make([]int, len(items))
	for i := range items {
		idx[i] = i
	}
	tbl.SetRows(idx)
	_ = tbl.Render(a.out)

	if len(items) > 0 {
		totals := a.session.Cart().Totals()
		if a.pages.Active() == PageFacturacion {
			fmt.Fprintf(a.out, "Subtotal: $%s  IVA: $%s  Total: $%s\n",
				totals.Subtotal.StringFixed(2), totals.Tax.StringFixed(2), totals.Total.StringFixed(2))
		} else {
			fmt.Fprintf(a.out, "Total: $%s\n", totals.Subtotal.StringFixed(2))
		}
	}
}

func (a *App) renderCredit(ctx context.Context) error {
	switch a.credit.Active() {
	case CreditTabFacturas:
		list, err := a.client.FetchInvoices(ctx)
		if err != nil {
			return err
		}
		tbl := view.NewTable([]view.Column[dto.InvoiceResponse]{
			{Title: "Factura", Resolve: func(r dto.InvoiceResponse) string { return r.ID }},
			{Title: "Cliente", Resolve: func(r dto.InvoiceResponse) string { return r.ClientName }},
			{Title: "Emisión", Resolve: func(r dto.InvoiceResponse) string { return r.IssueDate }},
			{Title: "Vence", Resolve: func(r dto.InvoiceResponse) string { return r.DueDate }},
			{Title: "Monto", Resolve: func(r dto.InvoiceResponse) string { return "$" + r.Amount.StringFixed(2) }},
			{Title: "Estado", Resolve: func(r dto.InvoiceResponse) string { return r.Status }},
		}).WithEmptyMessage("No hay facturas de crédito")
		tbl.SetRows(list.Items)
		return tbl.Render(a.out)
	case CreditTabAbonos:
		list, err := a.client.FetchPayments(ctx)
		if err != nil {
			return err
		}
		tbl := view.NewTable([]view.Column[dto.PaymentResponse]{
			{Title: "Abono", Resolve: func(r dto.PaymentResponse) string { return r.ID }},
			{Title: "Factura", Resolve: func(r dto.PaymentResponse) string { return r.InvoiceID }},
			{Title: "Fecha", Resolve: func(r dto.PaymentResponse) string { return r.Date }},
			{Title: "Monto", Resolve: func(r dto.PaymentResponse) string { return "$" + r.Amount.StringFixed(2) }},
			{Title: "Método", Resolve: func(r dto.PaymentResponse) string { return r.Method }},
		}).WithEmptyMessage("No hay abonos registrados")
		tbl.SetRows(list.Items)
		return tbl.Render(a.out)
	case CreditTabNotas:
		list, err := a.client.FetchCreditNotes(ctx)
		if err != nil {
			return err
		}
		tbl := view.NewTable([]view.Column[dto.CreditNoteResponse]{
			{Title: "Nota", Resolve: func(r dto.CreditNoteResponse) string { return r.ID }},
			{Title: "Factura", Resolve: func(r dto.CreditNoteResponse) string { return r.InvoiceID }},
			{Title: "Cliente", Resolve: func(r dto.CreditNoteResponse) string { return r.ClientName }},
			{Title: "Fecha", Resolve: func(r dto.CreditNoteResponse) string { return r.Date }},
			{Title: "Monto", Resolve: func(r dto.CreditNoteResponse) string { return "$" + r.Amount.StringFixed(2) }},
			{Title: "Motivo", Resolve: func(r dto.CreditNoteResponse) string { return r.Reason }},
		}).WithEmptyMessage("No hay notas de crédito")
		tbl.SetRows(list.Items)
		return tbl.Render(a.out)
	}
	return nil
}

// ── Comandos ─────────────────────────────────────────────────────────────────

func (a *App) cmdPagina(ctx context.Context, args []string) error {
	if a.pages.Active() != PageInventarios {
		return errors.New("la paginación solo aplica en inventarios")
	}
	if len(args) != 1 {
		return errors.New("uso: pagina <siguiente|anterior>")
	}
	switch args[0] {
	case "siguiente":
		a.pager.Next()
	case "anterior":
		a.pager.Prev()
	default:
		return fmt.Errorf("dirección desconocida: %q", args[0])
	}
	return a.renderInventory(ctx)
}

func (a *App) cmdPestana(ctx context.Context, args []string) error {
	if a.pages.Active() != PageCreditos {
		return errors.New("las pestañas solo aplican en créditos")
	}
	if len(args) != 1 {
		return errors.New("uso: pestana <facturas|abonos|notas>")
	}
	tab, err := ParseCreditTab(args[0])
	if err != nil {
		return err
	}
	a.credit.Select(tab)
	return a.renderCredit(ctx)
}

func (a *App) cmdAlta(ctx context.Context, args []string) error {
	if len(args) < 4 {
		return errors.New("uso: alta <sku> <precio> <stock> <nombre...>")
	}
	price, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("precio inválido: %q", args[1])
	}
	stock, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("stock inválido: %q", args[2])
	}
	created, err := a.client.CreateProduct(ctx, dto.CreateProductRequest{
		SKU:   args[0],
		Name:  strings.Join(args[3:], " "),
		Price: price,
		Stock: stock,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Producto creado: %s (%s)\n", created.Name, created.ID)
	return nil
}

func (a *App) cmdStock(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("uso: stock <id> <n>")
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("stock inválido: %q", args[1])
	}
	updated, err := a.client.UpdateProduct(ctx, args[0], dto.UpdateProductRequest{Stock: &n})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Stock de %s ajustado a %d\n", updated.Name, updated.Stock)
	return nil
}

func (a *App) cmdEliminar(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("uso: eliminar <id>")
	}
	if err := a.client.DeleteProduct(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Producto eliminado")
	return a.renderInventory(ctx)
}

func (a *App) cmdAgregar(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("uso: agregar <sku>")
	}
	p, err := a.session.AddBySKU(ctx, args[0])
	if err != nil {
		if errors.Is(err, billing.ErrBusquedaEnCurso) {
			// Escaneo con otra búsqueda en vuelo: se ignora sin tocar el carrito.
			return nil
		}
		return err
	}
	fmt.Fprintf(a.out, "Agregado: %s\n", p.Name)
	a.renderCart()
	return nil
}

func (a *App) cmdCantidad(args []string) error {
	if len(args) != 2 {
		return errors.New("uso: cantidad <id> <n>")
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("cantidad inválida: %q", args[1])
	}
	a.session.Cart().SetQuantity(args[0], n)
	a.renderCart()
	return nil
}

func (a *App) cmdQuitar(args []string) error {
	if len(args) != 1 {
		return errors.New("uso: quitar <id>")
	}
	a.session.Cart().Remove(args[0])
	a.renderCart()
	return nil
}

func (a *App) cmdCobrar(ctx context.Context) error {
	receipt, err := a.session.FinalizeSale(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Venta finalizada: %s por $%s\n", receipt.ID, receipt.Total.StringFixed(2))
	return nil
}

func (a *App) cmdFacturar(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("uso: facturar <cliente...>")
	}
	bill, err := a.session.FinalizeBill(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Factura emitida: %s por $%s\n", bill.ID, bill.Total.StringFixed(2))
	return nil
}

func (a *App) cmdAbonar(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.New("uso: abonar <factura> <monto> <metodo>")
	}
	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("monto inválido: %q", args[1])
	}
	payment, err := a.client.CreatePayment(ctx, dto.CreatePaymentRequest{
		InvoiceID: args[0],
		Amount:    amount,
		Method:    args[2],
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Abono registrado: %s\n", payment.ID)
	return nil
}

func (a *App) cmdNota(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.New("uso: nota <factura> <monto> <motivo...>")
	}
	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("monto inválido: %q", args[1])
	}
	note, err := a.client.CreateCreditNote(ctx, dto.CreateCreditNoteRequest{
		InvoiceID: args[0],
		Amount:    amount,
		Reason:    strings.Join(args[2:], " "),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Nota de crédito emitida: %s\n", note.ID)
	return nil
}
