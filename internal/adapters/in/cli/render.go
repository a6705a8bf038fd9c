package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/shipment"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	accent = lipgloss.Color("#D97706")
	dim    = lipgloss.Color("#6B7280")
	danger = lipgloss.Color("#EF4444")
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	deletedStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(danger)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
)

type shipmentView struct {
	ID               int64  `json:"id"`
	Tracking         string `json:"tracking"`
	Carrier          string `json:"carrier"`
	Type             string `json:"type"`
	Cost             string `json:"cost"`
	DispatchDate     string `json:"dispatchDate"`
	EstimatedArrival string `json:"estimatedArrival"`
	Status           string `json:"status"`
	OrderID          *int64 `json:"orderId,omitempty"`
	Deleted          bool   `json:"deleted"`
	DaysLate         *int   `json:"daysLate,omitempty"`
}

type orderView struct {
	ID           int64         `json:"id"`
	Number       string        `json:"number"`
	Date         string        `json:"date"`
	CustomerName string        `json:"customerName"`
	Total        string        `json:"total"`
	Status       string        `json:"status"`
	Shipment     *shipmentView `json:"shipment,omitempty"`
}

func toShipmentView(s *shipment.Shipment) *shipmentView {
	if s == nil {
		return nil
	}
	view := &shipmentView{
		ID:               s.ID.Int64(),
		Tracking:         s.Tracking,
		Carrier:          s.Carrier.String(),
		Type:             s.Kind.String(),
		Cost:             s.Cost.StringFixed(2),
		DispatchDate:     kernel.FormatDate(s.DispatchDate),
		EstimatedArrival: kernel.FormatDate(s.EstimatedArrival),
		Status:           s.Status.String(),
		Deleted:          s.Deleted,
	}
	if s.IsOwned() {
		owner := s.OrderID.Int64()
		view.OrderID = &owner
	}
	return view
}

func toOrderView(o *order.Order) orderView {
	return orderView{
		ID:           o.ID.Int64(),
		Number:       o.Number,
		Date:         kernel.FormatDate(o.Date),
		CustomerName: o.CustomerName,
		Total:        o.Total.StringFixed(2),
		Status:       o.Status.String(),
		Shipment:     toShipmentView(o.Shipment),
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderTable(headers []string, rows [][]string, deletedRows map[int]bool) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case deletedRows[row]:
				return deletedStyle
			default:
				return cellStyle
			}
		})
	return t.Render() + "\n"
}

func (a *app) printOrders(w io.Writer, orders []*order.Order) error {
	if a.jsonOutput {
		views := make([]orderView, 0, len(orders))
		for _, o := range orders {
			views = append(views, toOrderView(o))
		}
		return writeJSON(w, views)
	}

	if len(orders) == 0 {
		_, err := fmt.Fprintln(w, dimStyle.Render("no orders"))
		return err
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		tracking := "-"
		if o.Shipment != nil {
			tracking = o.Shipment.Tracking
			if o.Shipment.Deleted {
				tracking += " (deleted)"
			}
		}
		rows = append(rows, []string{
			o.ID.String(), o.Number, kernel.FormatDate(o.Date), o.CustomerName,
			o.Total.StringFixed(2), o.Status.String(), tracking,
		})
	}
	_, err := fmt.Fprint(w, renderTable(
		[]string{"ID", "NUMBER", "DATE", "CUSTOMER", "TOTAL", "STATUS", "SHIPMENT"}, rows, nil,
	))
	return err
}

func (a *app) printOrder(w io.Writer, o *order.Order) error {
	if a.jsonOutput {
		return writeJSON(w, toOrderView(o))
	}
	if err := a.printOrders(w, []*order.Order{o}); err != nil {
		return err
	}
	if o.Shipment != nil {
		return a.printShipments(w, []*shipment.Shipment{o.Shipment})
	}
	return nil
}

func (a *app) printShipments(w io.Writer, shipments []*shipment.Shipment) error {
	if a.jsonOutput {
		views := make([]*shipmentView, 0, len(shipments))
		for _, s := range shipments {
			views = append(views, toShipmentView(s))
		}
		return writeJSON(w, views)
	}

	if len(shipments) == 0 {
		_, err := fmt.Fprintln(w, dimStyle.Render("no shipments"))
		return err
	}

	rows := make([][]string, 0, len(shipments))
	deleted := make(map[int]bool)
	for i, s := range shipments {
		rows = append(rows, shipmentRow(s))
		deleted[i] = s.Deleted
	}
	_, err := fmt.Fprint(w, renderTable(shipmentHeaders, rows, deleted))
	return err
}

func (a *app) printShipment(w io.Writer, s *shipment.Shipment) error {
	if a.jsonOutput {
		return writeJSON(w, toShipmentView(s))
	}
	return a.printShipments(w, []*shipment.Shipment{s})
}

func (a *app) printOverdue(w io.Writer, overdue []queries.ListOverdueShipmentsQueryResponse) error {
	if a.jsonOutput {
		views := make([]*shipmentView, 0, len(overdue))
		for _, item := range overdue {
			view := toShipmentView(item.Shipment)
			days := item.DaysLate
			view.DaysLate = &days
			views = append(views, view)
		}
		return writeJSON(w, views)
	}

	if len(overdue) == 0 {
		_, err := fmt.Fprintln(w, dimStyle.Render("no overdue shipments"))
		return err
	}

	rows := make([][]string, 0, len(overdue))
	for _, item := range overdue {
		rows = append(rows, append(shipmentRow(item.Shipment), strconv.Itoa(item.DaysLate)))
	}
	_, err := fmt.Fprint(w, renderTable(append(append([]string{}, shipmentHeaders...), "DAYS LATE"), rows, nil))
	return err
}

func (a *app) printDone(w io.Writer, message string) error {
	if a.jsonOutput {
		return writeJSON(w, map[string]string{"result": message})
	}
	_, err := fmt.Fprintln(w, message)
	return err
}

var shipmentHeaders = []string{"ID", "TRACKING", "CARRIER", "TYPE", "COST", "DISPATCH", "ARRIVAL", "STATUS", "ORDER"}

func shipmentRow(s *shipment.Shipment) []string {
	owner := "-"
	if s.IsOwned() {
		owner = s.OrderID.String()
	}
	return []string{
		s.ID.String(), s.Tracking, s.Carrier.String(), s.Kind.String(), s.Cost.StringFixed(2),
		kernel.FormatDate(s.DispatchDate), kernel.FormatDate(s.EstimatedArrival), s.Status.String(), owner,
	}
}
