package models

// All returns every model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&AddressModel{},
		&PublicServiceModel{},
		&ApplicationModel{},
		&PaymentMethodModel{},
		&RechargeRequestModel{},
		&MediaModel{},
		&BlogCategoryModel{},
		&BlogPostModel{},
		&CareerModel{},
		&CenterModel{},
		&TeamMemberModel{},
		&ContactFormModel{},
	}
}
