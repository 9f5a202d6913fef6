// Package msw scrapes magicseaweed style surf report pages.
//
// scraping a spot is split in two steps:
// 1) url -> Page, Client.Fetch performs the request and parses the body,
//    failures are kept on the page rather than returned.
// 2) Page -> Rating, an Extractor reads the star rating widget with goquery
//    selectors.
//
// keeping the steps apart lets the extractor be run against saved pages.
package msw
