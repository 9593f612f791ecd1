package gateway

// fallbackPage is served when the configured maintenance document cannot be
// fetched. It is a compiled-in constant so this path can never itself fail
// to load; every token it contains is in the recognized set, so the rendered
// page carries no unresolved placeholders.
const fallbackPage = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Maintenance</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            text-align: center;
            padding: 50px;
            background-color: #f5f5f5;
        }
        .container {
            max-width: 600px;
            margin: 0 auto;
            background-color: white;
            padding: 40px;
            border-radius: 10px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }
        h1 {
            color: #333;
        }
        p {
            color: #666;
            line-height: 1.6;
        }
        .meta {
            color: #aaa;
            font-size: 12px;
            margin-top: 30px;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>Maintenance in Progress</h1>
        <p>We're currently performing scheduled maintenance to improve our service.</p>
        <p>Please check back soon. We apologize for any inconvenience.</p>
        <p class="meta">Request {{REQUEST_ID}} &middot; {{TIMESTAMP}}</p>
    </div>
</body>
</html>
`
