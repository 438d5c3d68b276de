package controllers

import (
	"fmt"
	"time"

	"github.com/Bibek1604/epsalae-storefront/config"
	"github.com/Bibek1604/epsalae-storefront/models"
	"github.com/Bibek1604/epsalae-storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"
)

// orderExportSummary aggregates the fetched order list for the report header
type orderExportSummary struct {
	TotalOrders     int
	TotalRevenue    float64
	TotalItems      int
	Cancelled       int
	Delivered       int
	AverageOrderVal float64
}

func summarizeOrders(orders []models.Order) orderExportSummary {
	var s orderExportSummary
	for _, order := range orders {
		s.TotalOrders++
		s.TotalRevenue += order.TotalAmount
		for _, item := range order.Items {
			s.TotalItems += item.Quantity
		}
		switch order.Status {
		case models.OrderStatusCancelled:
			s.Cancelled++
		case models.OrderStatusDelivered:
			s.Delivered++
		}
	}
	if s.TotalOrders > 0 {
		s.AverageOrderVal = utils.RoundMoney(s.TotalRevenue / float64(s.TotalOrders))
	}
	s.TotalRevenue = utils.RoundMoney(s.TotalRevenue)
	return s
}

// fetchOrdersForExport refetches the order list so the report always reflects
// the backend, not a stale cache.
func (a *App) fetchOrdersForExport(c *gin.Context) ([]models.Order, bool) {
	if err := a.Orders.FetchAll(c.Request.Context(), nil); err != nil {
		utils.LogError("Failed to fetch orders for export: %v", err)
		utils.FromAppError(c, err)
		return nil, false
	}
	return a.Orders.Items(), true
}

// AdminExportOrdersExcel downloads the order table as an Excel workbook
func (a *App) AdminExportOrdersExcel(c *gin.Context) {
	utils.LogInfo("AdminExportOrdersExcel called")

	orders, ok := a.fetchOrdersForExport(c)
	if !ok {
		return
	}
	summary := summarizeOrders(orders)
	utils.LogDebug("Exporting %d orders to Excel", len(orders))

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString(config.App.AppName + " - Orders Report")
	dateRow := sheet.AddRow()
	dateRow.AddCell().SetString("Generated: " + time.Now().Format("2006-01-02 15:04"))
	sheet.AddRow() // spacing

	headers := []string{"Order ID", "Customer", "Phone", "City", "Date", "Items", "Total", "Payment", "Status"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, order := range orders {
		itemCount := 0
		for _, item := range order.Items {
			itemCount += item.Quantity
		}
		row := sheet.AddRow()
		row.AddCell().SetString(order.ID.String())
		row.AddCell().SetString(order.FirstName + " " + order.LastName)
		row.AddCell().SetString(order.Phone)
		row.AddCell().SetString(order.City)
		row.AddCell().SetString(order.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetInt(itemCount)
		row.AddCell().SetFloat(order.TotalAmount)
		row.AddCell().SetString(order.PaymentMethod)
		row.AddCell().SetString(order.Status)
	}

	sheet.AddRow() // spacing
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Orders", fmt.Sprintf("%d", summary.TotalOrders)},
		{"Total Revenue", fmt.Sprintf("%.2f", summary.TotalRevenue)},
		{"Total Items", fmt.Sprintf("%d", summary.TotalItems)},
		{"Delivered", fmt.Sprintf("%d", summary.Delivered)},
		{"Cancelled", fmt.Sprintf("%d", summary.Cancelled)},
		{"Avg. Order Value", fmt.Sprintf("%.2f", summary.AverageOrderVal)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=orders_report.xlsx")
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Exported %d orders to Excel", len(orders))
}

// AdminExportOrdersPDF downloads the order table as a PDF
func (a *App) AdminExportOrdersPDF(c *gin.Context) {
	utils.LogInfo("AdminExportOrdersPDF called")

	orders, ok := a.fetchOrdersForExport(c)
	if !ok {
		return
	}
	summary := summarizeOrders(orders)
	utils.LogDebug("Exporting %d orders to PDF", len(orders))

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, config.App.AppName+" - Orders Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, config.App.AppDescription)
	pdf.Ln(6)
	pdf.Cell(0, 8, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	headers := []string{"Order ID", "Customer", "Phone", "City", "Date", "Items", "Total", "Payment", "Status"}
	colWidths := []float64{35, 45, 32, 30, 32, 15, 25, 28, 28}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range headers {
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	fill := false
	for _, order := range orders {
		itemCount := 0
		for _, item := range order.Items {
			itemCount += item.Quantity
		}
		pdf.SetFillColor(245, 245, 245)
		if fill {
			pdf.SetFillColor(230, 240, 255)
		}
		fill = !fill
		pdf.CellFormat(colWidths[0], 8, order.ID.String(), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[1], 8, order.FirstName+" "+order.LastName, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[2], 8, order.Phone, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[3], 8, order.City, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[4], 8, order.CreatedAt.Format("2006-01-02 15:04"), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[5], 8, fmt.Sprintf("%d", itemCount), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[6], 8, fmt.Sprintf("%.2f", order.TotalAmount), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[7], 8, order.PaymentMethod, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[8], 8, order.Status, "1", 0, "C", fill, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 13)
	pdf.SetFillColor(220, 230, 250)
	pdf.CellFormat(70, 10, "Summary", "1", 0, "C", true, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 11)
	summaryData := [][]string{
		{"Total Orders", fmt.Sprintf("%d", summary.TotalOrders)},
		{"Total Revenue", fmt.Sprintf("%.2f", summary.TotalRevenue)},
		{"Total Items", fmt.Sprintf("%d", summary.TotalItems)},
		{"Delivered", fmt.Sprintf("%d", summary.Delivered)},
		{"Cancelled", fmt.Sprintf("%d", summary.Cancelled)},
		{"Avg. Order Value", fmt.Sprintf("%.2f", summary.AverageOrderVal)},
	}
	for _, data := range summaryData {
		pdf.CellFormat(50, 8, data[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, data[1], "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=orders_report.pdf")
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
		return
	}
	utils.LogInfo("Exported %d orders to PDF", len(orders))
}
