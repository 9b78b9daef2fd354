package runner

// GauTool builds the gau invocation for domain. gau pulls URLs for the
// domain and its subdomains from public archives.
func GauTool(bin, domain string) Tool {
	if bin == "" {
		bin = "gau"
	}
	return Tool{
		Name: "gau",
		Bin:  bin,
		Args: []string{"--subs", domain},
	}
}

// URLFinderTool builds the urlfinder invocation for domain. urlfinder
// collects URLs from passive sources without touching the target.
func URLFinderTool(bin, domain string) Tool {
	if bin == "" {
		bin = "urlfinder"
	}
	return Tool{
		Name: "urlfinder",
		Bin:  bin,
		Args: []string{"-d", domain, "-all", "-silent"},
	}
}
