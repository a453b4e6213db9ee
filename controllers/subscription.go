package controllers

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"anchored/config"
	"anchored/models"
	"anchored/payments"
)

// Plan catalog. Amounts are minor currency units.
var planPrices = map[string]int64{
	"monthly": 499,
	"yearly":  4999,
}

type BuySubscriptionInput struct {
	Plan string `json:"plan"` // "monthly" or "yearly"
}

/* ---------- Handlers (Subscription) ---------- */

// BuySubscription creates a checkout session with the payments provider and
// records a pending payment.
func BuySubscription(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var input BuySubscriptionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	amount, ok := planPrices[input.Plan]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown plan"})
	}

	returnURL := os.Getenv("CLIENT_URL") + "/dashboard/subscription"
	session, err := payments.NewClient().CreateCheckoutSession(amount, "USD", "Anchored premium ("+input.Plan+")", returnURL)
	if err != nil {
		log.Printf("checkout session failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Payment provider is unavailable"})
	}

	payment := models.Payment{
		FamilyID:   user.FamilyID,
		UserID:     user.ID,
		ProviderID: session.ID,
		Plan:       input.Plan,
		Amount:     amount,
		Currency:   "USD",
		Status:     "pending",
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record payment"})
	}

	return c.JSON(fiber.Map{"confirmation_url": session.ConfirmationURL})
}

// webhookPayload is the provider's notification body.
type webhookPayload struct {
	Event  string `json:"event"` // "payment.succeeded", "payment.canceled"
	Object struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"object"`
}

// PaymentWebhook receives provider notifications. The route is
// unauthenticated; the HMAC signature header is the only gate.
func PaymentWebhook(c *fiber.Ctx) error {
	body := c.Body()
	signature := c.Get("X-Payment-Signature")
	if !payments.VerifySignature(body, signature, os.Getenv("PAYMENT_WEBHOOK_SECRET")) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid webhook signature"})
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var payment models.Payment
	if err := config.DB.Where("provider_id = ?", payload.Object.ID).First(&payment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown payment"})
	}

	switch payload.Event {
	case "payment.succeeded":
		// Re-delivered notifications for an already processed payment are
		// acknowledged without extending the subscription again.
		if payment.Status == "succeeded" {
			return c.JSON(fiber.Map{"success": true})
		}
		payment.Status = "succeeded"
		if err := config.DB.Save(&payment).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment"})
		}
		if err := activateSubscription(payment); err != nil {
			log.Printf("subscription activation for family %d failed: %v", payment.FamilyID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to activate subscription"})
		}
	case "payment.canceled":
		payment.Status = "canceled"
		config.DB.Save(&payment)
	default:
		log.Printf("ignoring webhook event %q for payment %s", payload.Event, payload.Object.ID)
	}

	return c.JSON(fiber.Map{"success": true})
}

// activateSubscription upserts the family's subscription, extending from the
// current expiry when it is still active.
func activateSubscription(payment models.Payment) error {
	duration := 30 * 24 * time.Hour
	if payment.Plan == "yearly" {
		duration = 365 * 24 * time.Hour
	}

	var sub models.Subscription
	err := config.DB.Where("family_id = ?", payment.FamilyID).First(&sub).Error
	if err != nil {
		sub = models.Subscription{FamilyID: payment.FamilyID}
	}

	base := time.Now()
	if sub.Status == "active" && sub.ExpiresAt.After(base) {
		base = sub.ExpiresAt
	}

	sub.Plan = payment.Plan
	sub.Status = "active"
	sub.ExpiresAt = base.Add(duration)

	return config.DB.Save(&sub).Error
}

// CheckSubscription reports the family's current subscription state.
func CheckSubscription(c *fiber.Ctx) error {
	user, err := currentFamilyMember(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var sub models.Subscription
	if err := config.DB.Where("family_id = ?", user.FamilyID).First(&sub).Error; err != nil {
		return c.JSON(fiber.Map{"active": false})
	}

	active := sub.Status == "active" && sub.ExpiresAt.After(time.Now())
	return c.JSON(fiber.Map{
		"active":     active,
		"plan":       sub.Plan,
		"expires_at": sub.ExpiresAt,
	})
}

// ExpireSubscriptions marks subscriptions past their expiry as expired.
// Run from the daily cron job.
func ExpireSubscriptions() {
	result := config.DB.Model(&models.Subscription{}).
		Where("status = ? AND expires_at < ?", "active", time.Now()).
		Update("status", "expired")
	if result.Error != nil {
		log.Printf("subscription sweep failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("subscription sweep: %d expired", result.RowsAffected)
	}
}
