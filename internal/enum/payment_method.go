package enum

// PaymentMethod is a payment channel that can be offered on an invoice
type PaymentMethod string

// Universal
const (
	PaymentCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentEwallet      PaymentMethod = "EWALLET"
	PaymentPaylater     PaymentMethod = "PAYLATER"
)

// Indonesia
const (
	PaymentBCA              PaymentMethod = "BCA"
	PaymentBNI              PaymentMethod = "BNI"
	PaymentBSI              PaymentMethod = "BSI"
	PaymentBRI              PaymentMethod = "BRI"
	PaymentMandiri          PaymentMethod = "MANDIRI"
	PaymentPermata          PaymentMethod = "PERMATA"
	PaymentSahabatSampoerna PaymentMethod = "SAHABAT_SAMPOERNA"
	PaymentBNC              PaymentMethod = "BNC"
	PaymentAlfamart         PaymentMethod = "ALFAMART"
	PaymentIndomaret        PaymentMethod = "INDOMARET"
	PaymentOVO              PaymentMethod = "OVO"
	PaymentDANA             PaymentMethod = "DANA"
	PaymentShopeePay        PaymentMethod = "SHOPEEPAY"
	PaymentLinkAja          PaymentMethod = "LINKAJA"
	PaymentJeniusPay        PaymentMethod = "JENIUSPAY"
	PaymentDDBRI            PaymentMethod = "DD_BRI"
	PaymentDDBCAKlikpay     PaymentMethod = "DD_BCA_KLIKPAY"
	PaymentKredivo          PaymentMethod = "KREDIVO"
	PaymentAkulaku          PaymentMethod = "AKULAKU"
	PaymentAtome            PaymentMethod = "ATOME"
	PaymentQRIS             PaymentMethod = "QRIS"
)

// Philippines
const (
	PaymentSevenEleven                PaymentMethod = "7ELEVEN"
	PaymentCebuana                    PaymentMethod = "CEBUANA"
	PaymentDDBPI                      PaymentMethod = "DD_BPI"
	PaymentDDUBP                      PaymentMethod = "DD_UBP"
	PaymentDDRCBC                     PaymentMethod = "DD_RCBC"
	PaymentDDBDOEpay                  PaymentMethod = "DD_BDO_EPAY"
	PaymentDPMLhuillier               PaymentMethod = "DP_MLHUILLIER"
	PaymentDPPalawan                  PaymentMethod = "DP_PALAWAN"
	PaymentDPECPayLoan                PaymentMethod = "DP_ECPAY_LOAN"
	PaymentPayMaya                    PaymentMethod = "PAYMAYA"
	PaymentGrabPay                    PaymentMethod = "GRABPAY"
	PaymentGCash                      PaymentMethod = "GCASH"
	PaymentBillease                   PaymentMethod = "BILLEASE"
	PaymentCashalo                    PaymentMethod = "CASHALO"
	PaymentBDOOnlineBanking           PaymentMethod = "BDO_ONLINE_BANKING"
	PaymentBPIOnlineBanking           PaymentMethod = "BPI_ONLINE_BANKING"
	PaymentUnionbankOnlineBanking     PaymentMethod = "UNIONBANK_ONILNE_BANKING" // gateway spelling
	PaymentBOCOnlineBanking           PaymentMethod = "BOC_ONLINE_BANKING"
	PaymentChinabankOnlineBanking     PaymentMethod = "CHINABANK_ONLINE_BANKING"
	PaymentInstapayOnlineBanking      PaymentMethod = "INSTAPAY_ONLINE_BANKING"
	PaymentLandbankOnlineBanking      PaymentMethod = "LANDBANK_ONLINE_BANKING"
	PaymentMaybankOnlineBanking       PaymentMethod = "MAYBANK_ONLINE_BANKING"
	PaymentMetrobankOnlineBanking     PaymentMethod = "METROBANK_ONLINE_BANKING"
	PaymentPNBOnlineBanking           PaymentMethod = "PNB_ONLINE_BANKING"
	PaymentPSBankOnlineBanking        PaymentMethod = "PSBANK_ONLINE_BANKING"
	PaymentPesonetOnlineBanking       PaymentMethod = "PESONET_ONLINE_BANKING"
	PaymentRCBCOnlineBanking          PaymentMethod = "RCBC_ONLINE_BANKING"
	PaymentRobinsonsBankOnlineBanking PaymentMethod = "ROBINSONS_BANK_ONLINE_BANKING"
	PaymentSecurityBankOnlineBanking  PaymentMethod = "SECURITY_BANK_ONLINE_BANKING"
	PaymentQRPH                       PaymentMethod = "QRPH"
)

// Thailand
const (
	PaymentPromptPay PaymentMethod = "PROMPTPAY"
	PaymentLinePay   PaymentMethod = "LINEPAY"
	PaymentWeChatPay PaymentMethod = "WECHATPAY"
	PaymentTrueMoney PaymentMethod = "TRUEMONEY"
	PaymentDDSCBMB   PaymentMethod = "DD_SCB_MB"
	PaymentDDBBLMB   PaymentMethod = "DD_BBL_MB"
	PaymentDDKTBMB   PaymentMethod = "DD_KTB_MB"
	PaymentDDBAYMB   PaymentMethod = "DD_BAY_MB"
	PaymentDDKBankMB PaymentMethod = "DD_KBANK_MB"
)

// Vietnam
const (
	PaymentAppota      PaymentMethod = "APPOTA"
	PaymentZaloPay     PaymentMethod = "ZALOPAY"
	PaymentVNPTWallet  PaymentMethod = "VNPTWALLET"
	PaymentViettelPay  PaymentMethod = "VIETTELPAY"
	PaymentWoori       PaymentMethod = "WOORI"
	PaymentVietCapital PaymentMethod = "VIETCAPITAL"
	PaymentVPB         PaymentMethod = "VPB"
	PaymentBIDV        PaymentMethod = "BIDV"
)

// Malaysia
const (
	PaymentTouchNGo              PaymentMethod = "TOUCHNGO"
	PaymentDDUOBFPX              PaymentMethod = "DD_UOB_FPX"
	PaymentDDPublicFPX           PaymentMethod = "DD_PUBLIC_FPX"
	PaymentDDAffinFPX            PaymentMethod = "DD_AFFIN_FPX"
	PaymentDDAgroFPX             PaymentMethod = "DD_AGRO_FPX"
	PaymentDDAllianceFPX         PaymentMethod = "DD_ALLIANCE_FPX"
	PaymentDDAmbankFPX           PaymentMethod = "DD_AMBANK_FPX"
	PaymentDDIslamFPX            PaymentMethod = "DD_ISLAM_FPX"
	PaymentDDMuamalatFPX         PaymentMethod = "DD_MUAMALAT_FPX"
	PaymentDDBOCFPX              PaymentMethod = "DD_BOC_FPX"
	PaymentDDRakyatFPX           PaymentMethod = "DD_RAKYAT_FPX"
	PaymentDDBSNFPX              PaymentMethod = "DD_BSN_FPX"
	PaymentDDCIMBFPX             PaymentMethod = "DD_CIMB_FPX"
	PaymentDDHLBFPX              PaymentMethod = "DD_HLB_FPX"
	PaymentDDHSBCFPX             PaymentMethod = "DD_HSBC_FPX"
	PaymentDDKFHFPX              PaymentMethod = "DD_KFH_FPX"
	PaymentDDMayb2uFPX           PaymentMethod = "DD_MAYB2U_FPX"
	PaymentDDOCBCFPX             PaymentMethod = "DD_OCBC_FPX"
	PaymentDDRHBFPX              PaymentMethod = "DD_RHB_FPX"
	PaymentDDSCHFPX              PaymentMethod = "DD_SCH_FPX"
	PaymentDDAffinFPXBusiness    PaymentMethod = "DD_AFFIN_FPX_BUSINESS"
	PaymentDDAgroFPXBusiness     PaymentMethod = "DD_AGRO_FPX_BUSINESS"
	PaymentDDAllianceFPXBusiness PaymentMethod = "DD_ALLIANCE_FPX_BUSINESS"
	PaymentDDAmbankFPXBusiness   PaymentMethod = "DD_AMBANK_FPX_BUSINESS"
	PaymentDDIslamFPXBusiness    PaymentMethod = "DD_ISLAM_FPX_BUSINESS"
	PaymentDDMuamalatFPXBusiness PaymentMethod = "DD_MUAMALAT_FPX_BUSINESS"
	PaymentDDBNPFPXBusiness      PaymentMethod = "DD_BNP_FPX_BUSINESS"
	PaymentDDCIMBFPXBusiness     PaymentMethod = "DD_CIMB_FPX_BUSINESS"
	PaymentDDCitibankFPXBusiness PaymentMethod = "DD_CITIBANK_FPX_BUSINESS"
	PaymentDDDeutscheFPXBusiness PaymentMethod = "DD_DEUTSCHE_FPX_BUSINESS"
	PaymentDDHLBFPXBusiness      PaymentMethod = "DD_HLB_FPX_BUSINESS"
	PaymentDDHSBCFPXBusiness     PaymentMethod = "DD_HSBC_FPX_BUSINESS"
	PaymentDDRakyatFPXBusiness   PaymentMethod = "DD_RAKYAT_FPX_BUSINESS"
	PaymentDDKFHFPXBusiness      PaymentMethod = "DD_KFH_FPX_BUSINESS"
	PaymentDDMayb2eFPXBusiness   PaymentMethod = "DD_MAYB2E_FPX_BUSINESS"
	PaymentDDOCBCFPXBusiness     PaymentMethod = "DD_OCBC_FPX_BUSINESS"
	PaymentDDPublicFPXBusiness   PaymentMethod = "DD_PUBLIC_FPX_BUSINESS"
	PaymentDDRHBFPXBusiness      PaymentMethod = "DD_RHB_FPX_BUSINESS"
	PaymentDDSCHFPXBusiness      PaymentMethod = "DD_SCH_FPX_BUSINESS"
	PaymentDDUOBFPXBusiness      PaymentMethod = "DD_UOB_FPX_BUSINESS"
)

var paymentMethods = []PaymentMethod{
	PaymentCreditCard, PaymentBankTransfer, PaymentEwallet, PaymentPaylater,

	PaymentBCA, PaymentBNI, PaymentBSI, PaymentBRI, PaymentMandiri, PaymentPermata,
	PaymentSahabatSampoerna, PaymentBNC, PaymentAlfamart, PaymentIndomaret, PaymentOVO,
	PaymentDANA, PaymentShopeePay, PaymentLinkAja, PaymentJeniusPay, PaymentDDBRI,
	PaymentDDBCAKlikpay, PaymentKredivo, PaymentAkulaku, PaymentAtome, PaymentQRIS,

	PaymentSevenEleven, PaymentCebuana, PaymentDDBPI, PaymentDDUBP, PaymentDDRCBC,
	PaymentDDBDOEpay, PaymentDPMLhuillier, PaymentDPPalawan, PaymentDPECPayLoan,
	PaymentPayMaya, PaymentGrabPay, PaymentGCash, PaymentBillease, PaymentCashalo,
	PaymentBDOOnlineBanking, PaymentBPIOnlineBanking, PaymentUnionbankOnlineBanking,
	PaymentBOCOnlineBanking, PaymentChinabankOnlineBanking, PaymentInstapayOnlineBanking,
	PaymentLandbankOnlineBanking, PaymentMaybankOnlineBanking, PaymentMetrobankOnlineBanking,
	PaymentPNBOnlineBanking, PaymentPSBankOnlineBanking, PaymentPesonetOnlineBanking,
	PaymentRCBCOnlineBanking, PaymentRobinsonsBankOnlineBanking,
	PaymentSecurityBankOnlineBanking, PaymentQRPH,

	PaymentPromptPay, PaymentLinePay, PaymentWeChatPay, PaymentTrueMoney, PaymentDDSCBMB,
	PaymentDDBBLMB, PaymentDDKTBMB, PaymentDDBAYMB, PaymentDDKBankMB,

	PaymentAppota, PaymentZaloPay, PaymentVNPTWallet, PaymentViettelPay, PaymentWoori,
	PaymentVietCapital, PaymentVPB, PaymentBIDV,

	PaymentTouchNGo, PaymentDDUOBFPX, PaymentDDPublicFPX, PaymentDDAffinFPX, PaymentDDAgroFPX,
	PaymentDDAllianceFPX, PaymentDDAmbankFPX, PaymentDDIslamFPX, PaymentDDMuamalatFPX,
	PaymentDDBOCFPX, PaymentDDRakyatFPX, PaymentDDBSNFPX, PaymentDDCIMBFPX, PaymentDDHLBFPX,
	PaymentDDHSBCFPX, PaymentDDKFHFPX, PaymentDDMayb2uFPX, PaymentDDOCBCFPX, PaymentDDRHBFPX,
	PaymentDDSCHFPX, PaymentDDAffinFPXBusiness, PaymentDDAgroFPXBusiness,
	PaymentDDAllianceFPXBusiness, PaymentDDAmbankFPXBusiness, PaymentDDIslamFPXBusiness,
	PaymentDDMuamalatFPXBusiness, PaymentDDBNPFPXBusiness, PaymentDDCIMBFPXBusiness,
	PaymentDDCitibankFPXBusiness, PaymentDDDeutscheFPXBusiness, PaymentDDHLBFPXBusiness,
	PaymentDDHSBCFPXBusiness, PaymentDDRakyatFPXBusiness, PaymentDDKFHFPXBusiness,
	PaymentDDMayb2eFPXBusiness, PaymentDDOCBCFPXBusiness, PaymentDDPublicFPXBusiness,
	PaymentDDRHBFPXBusiness, PaymentDDSCHFPXBusiness, PaymentDDUOBFPXBusiness,
}

var methodsByCountry = map[CountryCode][]PaymentMethod{
	CountryIndonesia: {
		PaymentCreditCard, PaymentBCA, PaymentBNI, PaymentBSI, PaymentBRI,
		PaymentMandiri, PaymentPermata, PaymentSahabatSampoerna, PaymentBNC,
		PaymentAlfamart, PaymentIndomaret, PaymentOVO, PaymentDANA,
		PaymentShopeePay, PaymentLinkAja, PaymentJeniusPay, PaymentDDBRI,
		PaymentDDBCAKlikpay, PaymentKredivo, PaymentAkulaku, PaymentAtome,
		PaymentQRIS,
	},
	CountryPhilippines: {
		PaymentCreditCard, PaymentSevenEleven, PaymentCebuana, PaymentDDBPI,
		PaymentDDUBP, PaymentDDRCBC, PaymentDDBDOEpay, PaymentDPMLhuillier,
		PaymentDPPalawan, PaymentDPECPayLoan, PaymentPayMaya, PaymentGrabPay,
		PaymentGCash, PaymentShopeePay, PaymentBillease, PaymentCashalo,
		PaymentBDOOnlineBanking, PaymentBPIOnlineBanking,
		PaymentUnionbankOnlineBanking, PaymentBOCOnlineBanking,
		PaymentChinabankOnlineBanking, PaymentInstapayOnlineBanking,
		PaymentLandbankOnlineBanking, PaymentMaybankOnlineBanking,
		PaymentMetrobankOnlineBanking, PaymentPNBOnlineBanking,
		PaymentPSBankOnlineBanking, PaymentPesonetOnlineBanking,
		PaymentRCBCOnlineBanking, PaymentRobinsonsBankOnlineBanking,
		PaymentSecurityBankOnlineBanking, PaymentQRPH,
	},
	CountryThailand: {
		PaymentCreditCard, PaymentPromptPay, PaymentLinePay, PaymentWeChatPay,
		PaymentTrueMoney, PaymentShopeePay, PaymentDDSCBMB, PaymentDDBBLMB,
		PaymentDDKTBMB, PaymentDDBAYMB, PaymentDDKBankMB,
	},
	CountryVietnam: {
		PaymentCreditCard, PaymentAppota, PaymentZaloPay, PaymentVNPTWallet,
		PaymentViettelPay, PaymentShopeePay, PaymentWoori, PaymentVietCapital,
		PaymentVPB, PaymentBIDV,
	},
	CountryMalaysia: {
		PaymentCreditCard, PaymentTouchNGo, PaymentWeChatPay, PaymentDDUOBFPX,
		PaymentDDPublicFPX, PaymentDDAffinFPX, PaymentDDAgroFPX,
		PaymentDDAllianceFPX, PaymentDDAmbankFPX, PaymentDDIslamFPX,
		PaymentDDMuamalatFPX, PaymentDDBOCFPX, PaymentDDRakyatFPX,
		PaymentDDBSNFPX, PaymentDDCIMBFPX, PaymentDDHLBFPX,
		PaymentDDHSBCFPX, PaymentDDKFHFPX, PaymentDDMayb2uFPX,
		PaymentDDOCBCFPX, PaymentDDRHBFPX, PaymentDDSCHFPX,
		PaymentDDAffinFPXBusiness, PaymentDDAgroFPXBusiness,
		PaymentDDAllianceFPXBusiness, PaymentDDAmbankFPXBusiness,
		PaymentDDIslamFPXBusiness, PaymentDDMuamalatFPXBusiness,
		PaymentDDBNPFPXBusiness, PaymentDDCIMBFPXBusiness,
		PaymentDDCitibankFPXBusiness, PaymentDDDeutscheFPXBusiness,
		PaymentDDHLBFPXBusiness, PaymentDDHSBCFPXBusiness,
		PaymentDDRakyatFPXBusiness, PaymentDDKFHFPXBusiness,
		PaymentDDMayb2eFPXBusiness, PaymentDDOCBCFPXBusiness,
		PaymentDDPublicFPXBusiness, PaymentDDRHBFPXBusiness,
		PaymentDDSCHFPXBusiness, PaymentDDUOBFPXBusiness,
	},
}

// PaymentMethodValues returns every declared payment method
func PaymentMethodValues() []PaymentMethod {
	return append([]PaymentMethod(nil), paymentMethods...)
}

// ParsePaymentMethod parses a wire value
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	return parse("payment method", raw, paymentMethods)
}

func (m PaymentMethod) String() string { return string(m) }

// IsValid reports whether m is a declared variant
func (m PaymentMethod) IsValid() bool { return Contains(paymentMethods, m) }

// PaymentMethodsForCountry returns the methods available in a market.
// Unknown countries yield nil.
func PaymentMethodsForCountry(country CountryCode) []PaymentMethod {
	methods, ok := methodsByCountry[country]
	if !ok {
		return nil
	}
	return append([]PaymentMethod(nil), methods...)
}
