package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"time"

	config "github.com/PrathamGarg1/Xponsor-sub000/configs"
	"github.com/PrathamGarg1/Xponsor-sub000/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// GenerateCampaignBrief renders a shareable one-page PDF for a campaign and
// uploads it to Cloudinary, returning the hosted URL.
func GenerateCampaignBrief(campaign *models.Campaign) (string, error) {
	htmlData, err := generateBriefHTML(campaign)
	if err != nil {
		log.Printf("🔥 Failed to generate brief HTML: %v", err)
		return "", err
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate PDF: %v", err)
		return "", err
	}

	uploadURL, err := uploadToCloudinary(pdfBytes, campaign.ID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload brief to Cloudinary: %v", err)
		return "", err
	}

	log.Printf("✅ Generated and uploaded brief for campaign %s.", campaign.ID)
	return uploadURL, nil
}

func generateBriefHTML(campaign *models.Campaign) (string, error) {
	tmpl, err := template.ParseFiles("templates/brief.html")
	if err != nil {
		return "", err
	}

	var deliverables []string
	if len(campaign.Deliverables) > 0 {
		if err := json.Unmarshal(campaign.Deliverables, &deliverables); err != nil {
			return "", err
		}
	}

	deadline := "Open-ended"
	if campaign.Deadline != nil {
		deadline = campaign.Deadline.Format("January 2, 2006")
	}

	data := struct {
		Title        string
		BrandName    string
		Description  string
		Category     string
		Platform     string
		Budget       string
		Deliverables []string
		Deadline     string
		GeneratedAt  string
	}{
		Title:        campaign.Title,
		BrandName:    campaign.Brand.FullName,
		Description:  campaign.Description,
		Category:     campaign.Category,
		Platform:     campaign.Platform,
		Budget:       fmt.Sprintf("$%.2f", campaign.Budget),
		Deliverables: deliverables,
		Deadline:     deadline,
		GeneratedAt:  time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadToCloudinary(fileBytes []byte, campaignID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("briefs/%s_%s", campaignID, uuid.New().String()),
		Folder:       "xponsor_briefs",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
