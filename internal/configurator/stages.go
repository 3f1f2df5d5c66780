package configurator

// Keys written to the .env file.
const (
	KeyClientID               = "REACT_APP_SHARETRIBE_SDK_CLIENT_ID"
	KeyStripePublishableKey   = "REACT_APP_STRIPE_PUBLISHABLE_KEY"
	KeyMapboxAccessToken      = "REACT_APP_MAPBOX_ACCESS_TOKEN"
	KeyMarketplaceCurrency    = "REACT_APP_SHARETRIBE_MARKETPLACE_CURRENCY"
	KeyCanonicalRootURL       = "REACT_APP_CANONICAL_ROOT_URL"
	KeyAvailabilityEnabled    = "REACT_APP_AVAILABILITY_ENABLED"
	KeyDefaultSearchesEnabled = "REACT_APP_DEFAULT_SEARCHES_ENABLED"
)

// KeyShowAdvancedSettings gates the advanced questions and is never saved.
const KeyShowAdvancedSettings = "showAdvancedSettings"

const (
	defaultCurrency         = "USD"
	defaultCanonicalRootURL = "http://localhost:3000"
)

// MandatoryStage lists the settings the application cannot start without.
func MandatoryStage() Stage {
	return Stage{
		Name: "mandatory",
		Questions: []Question{
			{
				Key:      KeyClientID,
				Kind:     Input,
				Message:  "What is your Flex client ID?",
				Help:     "Client ID is needed for connecting with Flex API. You can find your client ID from Flex Console.",
				Default:  savedOr(KeyClientID, ""),
				Validate: ValidateClientID,
			},
			{
				Key:     KeyStripePublishableKey,
				Kind:    Input,
				Message: "What is your Stripe publishable key?",
				Help: "Stripe publishable API key is for generating tokens with Stripe API. " +
					"Use test key (prefix pk_test_) for development. The secret key needs to be added to Flex Console.\n" +
					"If you don't set the Stripe key, payments won't work in the application.",
				Default:  savedOr(KeyStripePublishableKey, ""),
				Validate: ValidatePublishableKey,
			},
			{
				Key:     KeyMapboxAccessToken,
				Kind:    Input,
				Message: "What is your Mapbox access token?",
				Help: "Mapbox is the default map provider of the application. Sign up for Mapbox and go to the account page. " +
					"Then click Create access token. For more information see the: Integrating to map providers documentation.\n" +
					"If you don't set the Mapbox key, the map components won't work in the application.",
				Default: savedOr(KeyMapboxAccessToken, ""),
			},
			{
				Key:     KeyMarketplaceCurrency,
				Kind:    Input,
				Message: "What is your marketplace currency?",
				Help: "The currency used in the Marketplace must be in ISO 4217 currency code. " +
					"For example USD, EUR, CAD, AUD, etc. The default value is USD.",
				Default:  savedOr(KeyMarketplaceCurrency, defaultCurrency),
				Validate: ValidateCurrency,
			},
		},
	}
}

// AdvancedStage lists the optional settings, asked only after the user opts
// in.
func AdvancedStage() Stage {
	return Stage{
		Name: "advanced",
		Questions: []Question{
			{
				Key:       KeyShowAdvancedSettings,
				Kind:      Confirm,
				Message:   "Do you want to edit advanced settings?",
				Transient: true,
			},
			{
				Key:     KeyCanonicalRootURL,
				Kind:    Input,
				Message: "What is your canonical root URL?",
				Help: "Canonical root URL of the marketplace is needed for social media sharing and SEO optimization. " +
					"When developing the template application locally URL is usually " + defaultCanonicalRootURL,
				Default: savedOr(KeyCanonicalRootURL, defaultCanonicalRootURL),
				When:    answered(KeyShowAdvancedSettings),
			},
			{
				Key:     KeyAvailabilityEnabled,
				Kind:    Confirm,
				Message: "Do you want to enable availability calendar?",
				Help:    "This setting enables the Availability Calendar for listings. The default value for this setting is true.",
				Default: savedOr(KeyAvailabilityEnabled, "true"),
				When:    answered(KeyShowAdvancedSettings),
			},
			{
				Key:     KeyDefaultSearchesEnabled,
				Kind:    Confirm,
				Message: "Do you want to enable default search suggestions?",
				Help: "This setting enables the Default Search Suggestions in location autocomplete search input. " +
					"The default value for this setting is true.",
				Default: savedOr(KeyDefaultSearchesEnabled, "true"),
				When:    answered(KeyShowAdvancedSettings),
			},
		},
	}
}
