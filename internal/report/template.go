package report

// documentTemplate is the static report shell: one independently selectable
// tab per folder, inline styling, and a minimal tab-switch script. Charts are
// embedded as data URIs so the document has no external references.
const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Sales Analytics</title>
    <style>
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7f6; padding: 20px; }
        .container { max-width: 1000px; margin: 0 auto; background: white; padding: 30px; border-radius: 10px; box-shadow: 0 4px 10px rgba(0,0,0,0.1); }
        h1 { text-align: center; color: #2c3e50; }
        .tabs { display: flex; border-bottom: 2px solid #ecf0f1; margin-bottom: 20px; }
        .tab-btn { padding: 10px 20px; cursor: pointer; background: none; border: none; font-size: 16px; color: #7f8c8d; font-weight: bold; transition: 0.3s; }
        .tab-btn:hover { color: #3498db; }
        .tab-btn.active { color: #3498db; border-bottom: 3px solid #3498db; }
        .content { display: none; animation: fadeIn 0.5s; }
        .content.active { display: block; }
        .grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 20px; }
        .card { background: #f8f9fa; padding: 20px; border-radius: 8px; border-left: 5px solid #3498db; }
        .card h3 { margin: 0 0 10px; font-size: 12px; text-transform: uppercase; color: #95a5a6; }
        .card p, .card ul { font-size: 18px; font-weight: bold; color: #2c3e50; margin: 0; padding: 0; }
        ul { list-style: none; }
        li { margin-bottom: 5px; }
        img { max-width: 100%; border: 1px solid #ddd; border-radius: 5px; margin-top: 10px; background: white; }
        .red-border { border-left-color: #e74c3c; }
        .ids-text { font-size: 14px; word-break: break-all; font-family: monospace; color: #555; }
        @keyframes fadeIn { from { opacity: 0; } to { opacity: 1; } }
    </style>
</head>
<body>
    <div class="container">
        <h1>Sales Analytics Dashboard</h1>

        <div class="tabs">
            {{- range .Tabs}}
            <button class="tab-btn{{if .Active}} active{{end}}" onclick="openTab('{{.Folder}}', this)">{{.Folder}}</button>
            {{- end}}
        </div>

        {{- range .Tabs}}
        <div id="{{.Folder}}" class="content{{if .Active}} active{{end}}">
            <div class="grid">
                <div class="card"><h3>Unique Users</h3><p>{{.UniqueUsers}}</p></div>
                <div class="card"><h3>Unique Authors</h3><p>{{.UniqueAuthors}}</p></div>
                <div class="card" style="grid-column: span 2"><h3>Most Popular Author</h3><p>{{.PopularAuthor}}</p></div>
                <div class="card">
                    <h3>Top 5 Days (Revenue)</h3>
                    <ul>
                        {{- range .TopDays}}
                        <li>{{.Day}}: ${{printf "%.2f" .Total}}</li>
                        {{- end}}
                    </ul>
                </div>
                <div class="card">
                    <h3>Best Buyer (Alias IDs)</h3>
                    <p class="ids-text">{{.BestBuyerAliases}}</p>
                </div>
            </div>
            <div class="card red-border" style="margin-top: 20px;">
                <h3>Revenue Chart</h3>
                {{- if .Chart}}
                <img src="{{.Chart}}" alt="Revenue chart">
                {{- else}}
                <p>Chart not generated</p>
                {{- end}}
            </div>
        </div>
        {{- end}}
    </div>

    <script>
        function openTab(tabId, btn) {
            document.querySelectorAll('.content').forEach(el => el.classList.remove('active'));
            document.querySelectorAll('.tab-btn').forEach(el => el.classList.remove('active'));
            document.getElementById(tabId).classList.add('active');
            btn.classList.add('active');
        }
    </script>
</body>
</html>
`
