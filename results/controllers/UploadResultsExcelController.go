package controllers

import (
	"errors"
	"fmt"
	"os"
	"time"

	"marathon-backend/config"
	"marathon-backend/db/models"
	"marathon-backend/results/services"
	"marathon-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// UploadResultsExcel ingests a results workbook. Rows are validated and
// inserted one at a time; a bad row is reported, not fatal, so the
// response is 200 even when every row failed. Only an unreadable or empty
// file fails the whole request.
func (rc *ResultController) UploadResultsExcel(c *fiber.Ctx) error {
	file, err := c.FormFile("excel")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No file uploaded"})
	}

	user, err := rc.currentUser(c)
	if err != nil {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Something went wrong"})
	}

	if err := os.MkdirAll("./tmp", 0755); err != nil {
		config.Logger.Error("Failed to create tmp directory", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save file"})
	}
	tempFilePath := fmt.Sprintf("./tmp/%s_%s", uuid.New().String(), file.Filename)
	if err := c.SaveFile(file, tempFilePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save file"})
	}
	defer os.Remove(tempFilePath)

	f, err := excelize.OpenFile(tempFilePath)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Error processing Excel file"})
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Error processing Excel file"})
	}
	if len(rows) <= 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Excel file is empty"})
	}

	report := services.ImportResultRows(rows, rc.ResultRepo, user.ID, user.Email)

	var downloadLink string
	if len(report.FailedRows) > 0 {
		downloadLink = rc.publishErrorReport(c, report.FailedRows, user.Email)
	}

	errs := report.Errors
	if len(errs) > 10 {
		errs = errs[:10] // cap the response body, the full list is in the report
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Excel upload completed",
		"totalRows":     report.TotalRows,
		"successCount":  report.SuccessCount,
		"errorCount":    report.ErrorCount,
		"errors":        errs,
		"download_link": downloadLink,
	})
}

// publishErrorReport persists the rejected rows, writes them into a
// workbook and mails it to the uploader. Every step is best effort: the
// upload already happened, so failures here are logged and swallowed.
func (rc *ResultController) publishErrorReport(c *fiber.Ctx, failedRows []models.BulkUploadErrorResult, recipient string) string {
	if err := rc.ResultRepo.LogBulkUploadErrors(failedRows); err != nil {
		config.Logger.Warn("Failed to log rejected import rows", zap.Error(err))
	}

	headers := []string{"RowNumber", "BibNumber", "Name", "Gender", "EventID", "Reason", "ErrorType", "AddedVia", "CreatedBy"}
	filePath, err := utils.GenerateExcel(failedRows, "result_upload_errors", headers)
	if err != nil {
		config.Logger.Warn("Failed to generate error report workbook", zap.Error(err))
		return ""
	}

	downloadLink := utils.GetDownloadURL(c, filePath)
	message := "Please find the attached file with rejected result rows (missing fields, invalid values and duplicates)."
	subject := "Result Upload Errors - " + time.Now().Format("2006-01-02 15:04:05")

	if err := utils.SendEmail(recipient, message, subject, "."+filePath); err != nil {
		config.Logger.Warn("Failed to send error report email", zap.Error(err))
		return downloadLink
	}

	active := true
	emailLog := models.EmailLog{
		ID:             uuid.New(),
		Recipient:      recipient,
		Subject:        subject,
		Message:        message,
		SentAt:         utils.Today(),
		Active:         &active,
		AttachmentPath: downloadLink,
	}
	if err := rc.ResultRepo.LogEmailSent(&emailLog); err != nil {
		config.Logger.Warn("Failed to log error report email", zap.Error(err))
	}

	return downloadLink
}
