package httpserver

import "lobitos-storefront/internal/domain"

func domainLocalized(in localizedRequest) domain.Localized {
	return domain.Localized{EN: in.EN, ES: in.ES}
}

func domainCategory(in string) domain.Category {
	switch domain.Category(in) {
	case domain.CategoryPoncho, domain.CategoryPonchos, domain.CategoryOther:
		return domain.Category(in)
	default:
		return domain.CategoryOther
	}
}

func domainDetails(en, es []string) *domain.LocalizedList {
	return &domain.LocalizedList{EN: en, ES: es}
}
