package store

import "github.com/ardhichain/registry/internal/models"

// SeedUser returns the initial marketplace user profile.
func SeedUser() models.UserProfile {
	return models.UserProfile{
		ID:            "u-1",
		Name:          "John Doe",
		Email:         "john.doe@ardhichain.ke",
		Role:          models.RoleBuyer,
		Verified:      true,
		WalletBalance: 2500000,
		WalletAddress: "0xABC...1234",
		Transactions: []models.TransactionRecord{
			{
				ID:           "tx-init-1",
				Timestamp:    "2023-12-01",
				From:         "CENTRAL_BANK",
				To:           "John Doe",
				Type:         models.TxVerification,
				Hash:         "0x772b...f91a",
				LandLRNumber: "ACCOUNT_FUNDING",
			},
			{
				ID:           "tx-init-2",
				Timestamp:    "2024-01-10",
				From:         "SYSTEM",
				To:           "John Doe",
				Type:         models.TxVerification,
				Hash:         "0x991c...e22b",
				LandLRNumber: "ID_VERIFICATION",
			},
		},
	}
}

// SeedParcels returns the initial parcel listings registered on the ledger.
func SeedParcels() []models.Parcel {
	return []models.Parcel{
		{
			ID:       "l-1",
			LRNumber: "SIAYA/ALEGO/4502",
			Location: "Nyar Alego",
			County:   "Siaya",
			Size:     "1.0 Acre",
			Price:    850000,
			Owner: models.Owner{
				ID:               "s-1",
				Name:             "Nyar Alego",
				IdentityVerified: true,
				WalletAddress:    "0x71C...3e4f",
			},
			Status:        models.StatusAvailable,
			Description:   "Prime agricultural land with proximity to the main road. Fertile soil suitable for maize and beans.",
			ImageURL:      "https://picsum.photos/seed/siaya/800/600",
			DeedSignature: "SH256-ALEGO-8829-AF91",
			History: []models.TransactionRecord{
				{
					ID:        "t-1",
					Timestamp: "2023-01-15",
					From:      "SYSTEM",
					To:        "Nyar Alego",
					Type:      models.TxRegistration,
					Hash:      "0xabc123...",
				},
			},
		},
		{
			ID:       "l-2",
			LRNumber: "NAIROBI/KILIMANI/102",
			Location: "Kilimani",
			County:   "Nairobi",
			Size:     "0.25 Acre",
			Price:    45000000,
			Owner: models.Owner{
				ID:               "s-2",
				Name:             "Central Developers Ltd",
				IdentityVerified: true,
				WalletAddress:    "0x92D...9a1b",
			},
			Status:             models.StatusDisputed,
			Description:        "Commercial plot in the heart of Kilimani. High ROI potential.",
			CourtCaseReference: "ELC/B22/2022",
			ImageURL:           "https://picsum.photos/seed/nairobi/800/600",
			DeedSignature:      "SH256-KILI-0012-BB21",
			History: []models.TransactionRecord{
				{
					ID:        "t-2",
					Timestamp: "2022-05-10",
					From:      "SYSTEM",
					To:        "Central Developers Ltd",
					Type:      models.TxRegistration,
					Hash:      "0xdef456...",
				},
				{
					ID:        "t-3",
					Timestamp: "2024-02-01",
					From:      "SYSTEM",
					To:        "SYSTEM",
					Type:      models.TxDisputeFlag,
					Hash:      "0xghi789...",
				},
			},
		},
		{
			ID:       "l-3",
			LRNumber: "NAKURU/MAU-NAROK/88",
			Location: "Mau Narok",
			County:   "Nakuru",
			Size:     "10.0 Acres",
			Price:    12000000,
			Owner: models.Owner{
				ID:               "s-3",
				Name:             "Samuel Kiprop",
				IdentityVerified: true,
				WalletAddress:    "0x12A...5f6c",
			},
			Status:        models.StatusAvailable,
			Description:   "Large scale farming land. Previously used for wheat cultivation.",
			ImageURL:      "https://picsum.photos/seed/nakuru/800/600",
			DeedSignature: "SH256-MAU-5541-CC11",
			History: []models.TransactionRecord{
				{
					ID:        "t-4",
					Timestamp: "2021-11-20",
					From:      "SYSTEM",
					To:        "Samuel Kiprop",
					Type:      models.TxRegistration,
					Hash:      "0xjkl012...",
				},
			},
		},
	}
}
