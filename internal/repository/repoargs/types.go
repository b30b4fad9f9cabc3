package repoargs

type RepositoryName string

const (
	UserRepoName         RepositoryName = "user"
	BalanceRepoName      RepositoryName = "balance"
	TaxRepoName          RepositoryName = "tax"
	AffiliationRepoName  RepositoryName = "affiliation"
	CoproductionRepoName RepositoryName = "coproduction"
	PaymentRepoName      RepositoryName = "payment"
)
